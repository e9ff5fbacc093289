package model

// Undo is the ordered list of resolved outputs consumed by a transaction's
// inputs, aligned index-for-index with Tx.Inputs. Its length must equal the
// number of inputs of the transaction it undoes.
type Undo struct {
	Spent []TxOutAux
}

// BlockUndo is the ordered list of per-tx Undos for a block, aligned with
// the block's transaction list.
type BlockUndo struct {
	TxUndos []Undo
}
