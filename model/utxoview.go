package model

// UtxoStoreReader is the read-only slice of the UtxoStore contract that a
// UtxoView needs from its base layer. Kept separate from the full
// store.UtxoStore interface so this package has no dependency on the store
// package.
type UtxoStoreReader interface {
	Get(k TxIn) (TxOutAux, bool)
}

// UtxoView is an in-memory overlay atop a base UtxoStore: pending
// additions and pending deletions. Reading a key checks del, then add,
// then falls through to base. add and del are always kept disjoint.
type UtxoView struct {
	add  map[TxIn]TxOutAux
	del  map[TxIn]struct{}
	base UtxoStoreReader
}

// NewUtxoView creates an empty overlay rooted at base.
func NewUtxoView(base UtxoStoreReader) *UtxoView {
	return &UtxoView{
		add:  make(map[TxIn]TxOutAux),
		del:  make(map[TxIn]struct{}),
		base: base,
	}
}

// Get applies overlay semantics: del wins over add, add wins over base.
func (v *UtxoView) Get(k TxIn) (TxOutAux, bool) {
	if _, deleted := v.del[k]; deleted {
		return TxOutAux{}, false
	}
	if out, ok := v.add[k]; ok {
		return out, true
	}
	if v.base == nil {
		return TxOutAux{}, false
	}
	return v.base.Get(k)
}

// ApplyTx folds one transaction's effect into the view: every input is
// marked spent (inserted into del, dropped from add), and every output is
// recorded as a new unspent entry (inserted into add, dropped from del).
// Preserves the add/del disjointness invariant by construction.
func (v *UtxoView) ApplyTx(id TxId, tx Tx, distribution TxDistribution) {
	for _, in := range tx.Inputs {
		delete(v.add, in)
		v.del[in] = struct{}{}
	}
	for j, out := range tx.Outputs {
		k := TxIn{PrevTxId: id, Index: uint32(j)}
		delete(v.del, k)
		v.add[k] = TxOutAux{Out: out, Distribution: distribution.At(j)}
	}
}

// Added looks k up in the overlay's pending additions only (not del, not
// base), for tests and for Admission's resolver construction.
func (v *UtxoView) Added(k TxIn) (TxOutAux, bool) {
	out, ok := v.add[k]
	return out, ok
}

// Deleted reports whether k has been marked spent in this overlay.
func (v *UtxoView) Deleted(k TxIn) bool {
	_, ok := v.del[k]
	return ok
}
