package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemPoolInsertionOrderPreserved(t *testing.T) {
	p := NewMemPool()
	ids := []TxId{mkTxId(1), mkTxId(2), mkTxId(3)}
	for _, id := range ids {
		p.Insert(id, TxAux{})
	}
	assert.Equal(t, ids, p.Ids())
	assert.Equal(t, 3, p.Size())
}

func TestMemPoolRemovePreservesRemainingOrder(t *testing.T) {
	p := NewMemPool()
	ids := []TxId{mkTxId(1), mkTxId(2), mkTxId(3)}
	for _, id := range ids {
		p.Insert(id, TxAux{})
	}
	p.Remove(mkTxId(2))

	assert.False(t, p.Contains(mkTxId(2)))
	assert.Equal(t, []TxId{mkTxId(1), mkTxId(3)}, p.Ids())
	assert.Equal(t, 2, p.Size())
}

func TestMemPoolContainsAndGet(t *testing.T) {
	p := NewMemPool()
	id := mkTxId(7)
	aux := TxAux{Tx: Tx{Outputs: []TxOut{{Value: 1}}}}
	p.Insert(id, aux)

	assert.True(t, p.Contains(id))
	got, ok := p.Get(id)
	assert.True(t, ok)
	assert.Equal(t, aux, got)

	_, ok = p.Get(mkTxId(99))
	assert.False(t, ok)
}
