package txp

import (
	"github.com/coreledger/txpcore/model"
	"github.com/coreledger/txpcore/store"
	"github.com/coreledger/txpcore/utils"
	"github.com/coreledger/txpcore/verify"
)

// CantApplyBlocks signals a caller-contract breakage: the given AltChain
// is not based on the current tip. Per spec.md §7 this is fatal for the
// caller to handle upstream, not something BlockApply tries to reconcile.
type CantApplyBlocks struct {
	Reason string
}

func (e CantApplyBlocks) Error() string {
	return "cannot apply blocks: " + e.Reason
}

// BlockApply is txApplyBlocks: it writes every block in chain to st as one
// batch per block, prunes the mempool of any tx the blocks confirmed, and
// renormalizes against the new tip — all while holding guard, so no
// admission can observe a half-applied chain. assertValid re-runs
// BlockVerify first and panics on failure, matching the "definitely valid
// blocks" assertion mode spec.md §4.5 describes as optional.
func BlockApply(st store.UtxoStore, guard *Guard, verifier *verify.TxVerifier, chain model.AltChain, assertValid bool) error {
	if st.Tip() != chain.Oldest().PrevHash {
		return CantApplyBlocks{Reason: "oldest block in AltChain is not based on tip"}
	}

	if assertValid {
		if _, err := BlockVerify(st, verifier, chain); err != nil {
			log.WithField("err", err).Panic("txpcore: caller handed BlockApply a chain that does not verify")
		}
	}

	Modify(guard, func(ld model.TxpLD) (struct{}, model.TxpLD) {
		for _, b := range chain {
			if st.Tip() != b.PrevHash {
				log.WithField("block", b.HeaderHash).Panic("txpcore: block's prevHash no longer matches store tip")
			}

			ids := make([]model.TxId, len(b.Txs))
			ops := make([]store.BatchOp, 0, 1)
			ops = append(ops, store.PutTip(b.HeaderHash))
			for i, aux := range b.Txs {
				id := utils.HashTx(aux.Tx)
				ids[i] = id
				for _, in := range aux.Tx.Inputs {
					ops = append(ops, store.DelTxIn(in))
				}
				for j, out := range aux.Tx.Outputs {
					k := model.TxIn{PrevTxId: id, Index: uint32(j)}
					ops = append(ops, store.AddTxOut(k, model.TxOutAux{Out: out, Distribution: aux.Distribution.At(j)}))
				}
			}

			if err := st.WriteBatch(ops); err != nil {
				log.WithField("err", err).Panic("txpcore: UtxoStore batch commit failed")
			}

			for _, id := range ids {
				ld.MemPool.Remove(id)
				delete(ld.Undos, id)
			}
		}

		return struct{}{}, normalizeLocked(st, verifier, ld)
	})

	return nil
}
