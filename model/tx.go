package model

// TxIn identifies one previously created output: the id of the transaction
// that created it and the index of the output within that transaction.
type TxIn struct {
	PrevTxId TxId
	Index    uint32
}

// TxOut is a value plus an opaque destination payload.
type TxOut struct {
	Value       int64
	Destination []byte
}

// TxOutAux is a TxOut together with opaque stake distribution metadata, the
// unit actually stored in the UTXO set.
type TxOutAux struct {
	Out          TxOut
	Distribution []byte
}

// Tx is the ordered list of inputs and outputs that make up a transaction.
// The i-th output of a tx with id t is referenced by TxIn{t, i}.
type Tx struct {
	Inputs  []TxIn
	Outputs []TxOut
}

// TxWitness is an opaque proof authorizing the inputs of a Tx.
type TxWitness struct {
	Proofs [][]byte
}

// TxDistribution is an ordered list aligned with a Tx's outputs, carrying
// per-output stake metadata.
type TxDistribution struct {
	Entries [][]byte
}

// At returns the distribution entry for output index i, or nil if absent.
func (d TxDistribution) At(i int) []byte {
	if i < 0 || i >= len(d.Entries) {
		return nil
	}
	return d.Entries[i]
}

// TxAux is a transaction together with its witness and distribution. It
// deliberately carries no id: the id is a content hash computed on demand
// by the hash(x) collaborator, never stored redundantly alongside the tx.
type TxAux struct {
	Tx           Tx
	Witness      TxWitness
	Distribution TxDistribution
}

// WithHash pairs a Tx with its precomputed id, avoiding rehashing when the
// caller already knows it.
type WithHash struct {
	Id TxId
	Tx Tx
}
