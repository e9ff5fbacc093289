package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTxpLDStartsEmpty(t *testing.T) {
	tip := mkBlockHash(9)
	ld := NewTxpLD(&fakeBase{entries: map[TxIn]TxOutAux{}}, tip)

	assert.Equal(t, tip, ld.Tip)
	assert.Equal(t, 0, ld.MemPool.Size())
	assert.Empty(t, ld.Undos)
	assert.NotNil(t, ld.View)
}

func mkBlockHash(b byte) BlockHeaderHash {
	var h BlockHeaderHash
	h[0] = b
	return h
}
