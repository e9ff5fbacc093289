package txp

import (
	"github.com/coreledger/txpcore/model"
	"github.com/coreledger/txpcore/store"
	"github.com/coreledger/txpcore/verify"
)

// Normalize recomputes the mempool so that only transactions still valid
// against the current tip remain. It takes guard itself through Modify, so
// it must not be called while the caller already holds guard; BlockApply
// uses normalizeLocked inside its own Modify instead. Exported for the
// standalone post-rollback call spec.md §4.8 requires.
func Normalize(st store.UtxoStore, guard *Guard, verifier *verify.TxVerifier) {
	Modify(guard, func(ld model.TxpLD) (struct{}, model.TxpLD) {
		return struct{}{}, normalizeLocked(st, verifier, ld)
	})
}

// normalizeLocked implements spec.md §4.7 against an already-held TxpLD.
// It never writes to the UtxoStore (it reads the tip and, through the new
// view, the entries the mempool txs spend) and is the function
// BlockApply folds directly into its own Modify session.
func normalizeLocked(st store.UtxoStore, verifier *verify.TxVerifier, ld model.TxpLD) model.TxpLD {
	newTip := st.Tip()

	order, ok := TopsortTxs(ld.MemPool)
	if !ok {
		log.Warn("txpcore: mempool has a dependency cycle, resetting mempool (this indicates a prior admission bug)")
		return model.NewTxpLD(st, newTip)
	}

	newView := model.NewUtxoView(st)
	validTxs := model.NewMemPool()
	newUndos := make(map[model.TxId]model.Undo)

	for _, id := range order {
		aux, ok := ld.MemPool.Get(id)
		if !ok {
			continue
		}
		resolver := func(in model.TxIn) (model.TxOutAux, bool) {
			return newView.Get(in)
		}
		if err := verifier.VerifyTx(false, resolver, aux.Tx, aux.Witness); err != nil {
			continue
		}
		newView.ApplyTx(id, aux.Tx, aux.Distribution)
		validTxs.Insert(id, aux)
		if undo, ok := ld.Undos[id]; ok {
			newUndos[id] = undo
		}
	}

	return model.TxpLD{
		View:    newView,
		MemPool: validTxs,
		Undos:   newUndos,
		Tip:     newTip,
	}
}
