package utils

import (
	"bytes"
	"encoding/binary"

	"github.com/coreledger/txpcore/model"
)

// HashTx computes a transaction's content hash: the hash(x) collaborator
// spec.md names as an external cryptographic primitive. It serializes
// inputs and outputs in order and runs SHA256 over the result, mirroring
// the teacher's GetTransactionBytes-then-SHA256 shape.
func HashTx(tx model.Tx) model.TxId {
	var buf bytes.Buffer
	for _, in := range tx.Inputs {
		buf.Write(in.PrevTxId[:])
		var idx [4]byte
		binary.BigEndian.PutUint32(idx[:], in.Index)
		buf.Write(idx[:])
	}
	for _, out := range tx.Outputs {
		var val [8]byte
		binary.BigEndian.PutUint64(val[:], uint64(out.Value))
		buf.Write(val[:])
		buf.Write(out.Destination)
	}

	digest := SHA256(buf.Bytes())
	var id model.TxId
	copy(id[:], digest)
	return id
}
