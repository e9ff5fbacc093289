package txp

import (
	"fmt"

	"github.com/coreledger/txpcore/model"
	"github.com/coreledger/txpcore/store"
	"github.com/coreledger/txpcore/utils"
	"github.com/coreledger/txpcore/verify"
)

// BlockVerify is txVerifyBlocks: it verifies chain against a transient
// UtxoView rooted at the current UtxoStore tip, without writing anything.
// It returns one BlockUndo per non-boundary block, oldest first, or the
// first verification error decorated with that block's slot.
func BlockVerify(st store.UtxoStore, verifier *verify.TxVerifier, chain model.AltChain) ([]model.BlockUndo, error) {
	view := model.NewUtxoView(st)

	var result []model.BlockUndo
	for _, b := range chain {
		if b.IsBoundary() {
			continue
		}
		txws := make([]verify.TxWithAux, len(b.Txs))
		for i, aux := range b.Txs {
			txws[i] = verify.TxWithAux{
				WithHash:     model.WithHash{Id: utils.HashTx(aux.Tx), Tx: aux.Tx},
				Witness:      aux.Witness,
				Distribution: aux.Distribution,
			}
		}

		undos, err := verifier.VerifyAndApplyTxs(false, view, txws)
		if err != nil {
			return nil, fmt.Errorf("[Block's slot = %d] %w", b.SlotId, err)
		}
		result = append(result, model.BlockUndo{TxUndos: undos})
	}
	return result, nil
}
