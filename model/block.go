package model

import "errors"

// Block is the pre-structured block shape this subsystem consumes. Header
// hashing and witness validation happen upstream; by the time a Block
// reaches BlockApply/BlockVerify it is assumed well-formed.
type Block struct {
	PrevHash   BlockHeaderHash
	HeaderHash BlockHeaderHash
	SlotId     int64
	// Txs is empty for a boundary (epoch/genesis) block.
	Txs []TxAux
}

// IsBoundary reports whether this block carries no transactions and should
// be skipped during verification, per the "boundary block" glossary entry.
func (b Block) IsBoundary() bool {
	return len(b.Txs) == 0
}

// AltChain is a non-empty, oldest-first sequence of blocks to apply or
// verify atop the current tip.
type AltChain []Block

// NewAltChain validates and wraps blocks into an AltChain. An empty slice
// is rejected: AltChain is non-empty by contract.
func NewAltChain(blocks []Block) (AltChain, error) {
	if len(blocks) == 0 {
		return nil, errors.New("AltChain must be non-empty")
	}
	return AltChain(blocks), nil
}

func (c AltChain) Oldest() Block {
	return c[0]
}

// BlockUndoPair couples a block with the undo needed to reverse it, the
// unit BlockRollback consumes.
type BlockUndoPair struct {
	Block Block
	Undo  BlockUndo
}
