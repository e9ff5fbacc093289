package txp

import (
	"github.com/coreledger/txpcore/model"
	"github.com/coreledger/txpcore/store"
	"github.com/coreledger/txpcore/utils"
)

// BlockRollback is txRollbackBlocks: it reverses each (block, undo) pair,
// youngest first, as one atomic UtxoStore batch per pair. It does not
// touch the mempool; callers are expected to invoke Normalize afterward,
// per spec.md §4.8.
func BlockRollback(st store.UtxoStore, pairs []model.BlockUndoPair) error {
	for _, pair := range pairs {
		block, undo := pair.Block, pair.Undo

		if len(undo.TxUndos) != len(block.Txs) {
			log.WithField("block", block.HeaderHash).Panic("txpcore: undo length does not match block's transaction count")
		}

		ops := make([]store.BatchOp, 0, 1)
		ops = append(ops, store.PutTip(block.PrevHash))

		for i, aux := range block.Txs {
			txUndo := undo.TxUndos[i]
			if len(txUndo.Spent) != len(aux.Tx.Inputs) {
				log.WithField("block", block.HeaderHash).Panic("txpcore: undo entry length does not match transaction's input count")
			}

			txId := utils.HashTx(aux.Tx)
			for j, in := range aux.Tx.Inputs {
				ops = append(ops, store.AddTxOut(in, txUndo.Spent[j]))
			}
			for j := range aux.Tx.Outputs {
				ops = append(ops, store.DelTxIn(model.TxIn{PrevTxId: txId, Index: uint32(j)}))
			}
		}

		if err := st.WriteBatch(ops); err != nil {
			log.WithField("err", err).Panic("txpcore: UtxoStore rollback batch commit failed")
		}
	}
	return nil
}
