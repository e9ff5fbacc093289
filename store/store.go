// Package store defines the persistent UTXO store contract and the two
// concrete backends the rest of this module runs against.
package store

import "github.com/coreledger/txpcore/model"

// OpKind enumerates the three batch operations a UtxoStore accepts.
type OpKind int

const (
	OpPutTip OpKind = iota
	OpAddTxOut
	OpDelTxIn
)

// BatchOp is one write in an atomic WriteBatch. Only the fields relevant to
// Kind are populated.
type BatchOp struct {
	Kind  OpKind
	Tip   model.BlockHeaderHash
	TxIn  model.TxIn
	TxOut model.TxOutAux
}

func PutTip(h model.BlockHeaderHash) BatchOp {
	return BatchOp{Kind: OpPutTip, Tip: h}
}

func AddTxOut(k model.TxIn, v model.TxOutAux) BatchOp {
	return BatchOp{Kind: OpAddTxOut, TxIn: k, TxOut: v}
}

func DelTxIn(k model.TxIn) BatchOp {
	return BatchOp{Kind: OpDelTxIn, TxIn: k}
}

// UtxoStore is the durable mapping TxIn -> TxOutAux plus the chain tip,
// accepting atomic batched writes. It is the subsystem's only external
// collaborator for persistence; everything above this interface is pure
// in-memory logic.
type UtxoStore interface {
	Get(k model.TxIn) (model.TxOutAux, bool)
	Tip() model.BlockHeaderHash
	WriteBatch(ops []BatchOp) error
}
