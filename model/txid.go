package model

import "encoding/hex"

// TxId is a content hash of a transaction body. Fixed-width, so it can be
// used directly as a map key.
type TxId [32]byte

func (id TxId) String() string {
	return hex.EncodeToString(id[:])
}

func (id TxId) IsZero() bool {
	return id == TxId{}
}

// BlockHeaderHash is the hash of a block header, same shape as TxId but kept
// distinct so the two hash spaces are never confused at compile time.
type BlockHeaderHash [32]byte

func (h BlockHeaderHash) String() string {
	return hex.EncodeToString(h[:])
}

func (h BlockHeaderHash) IsZero() bool {
	return h == BlockHeaderHash{}
}
