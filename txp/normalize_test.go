package txp

import (
	"testing"

	"github.com/coreledger/txpcore/model"
	"github.com/coreledger/txpcore/store"
	"github.com/coreledger/txpcore/utils"
	"github.com/coreledger/txpcore/verify"
	"github.com/stretchr/testify/assert"
)

// Scenario 5: a block spends the same input a pending mempool tx spends via
// a different tx. After apply+normalize, neither survives in the mempool.
func TestNormalizeDropsInvalidatedTx(t *testing.T) {
	st, guard, verifier := newTestFixture(t)
	spent := model.TxIn{PrevTxId: mkTxId(0), Index: 0}

	txA := model.Tx{
		Inputs:  []model.TxIn{spent},
		Outputs: []model.TxOut{{Value: 10}},
	}
	idA := mkTxId(1)
	assert.Equal(t, Added(), ProcessTx(st, guard, verifier, 10, idA, model.TxAux{Tx: txA}))

	// A block includes a different tx (txB) spending the same input.
	txB := model.Tx{
		Inputs:  []model.TxIn{spent},
		Outputs: []model.TxOut{{Value: 20}},
	}
	idB := utils.HashTx(txB)
	chain, err := model.NewAltChain([]model.Block{
		{PrevHash: mkBlockHash(0), HeaderHash: mkBlockHash(1), Txs: []model.TxAux{{Tx: txB}}},
	})
	assert.NoError(t, err)

	err = BlockApply(st, guard, verifier, chain, false)
	assert.NoError(t, err)

	snap := guard.Snapshot()
	assert.False(t, snap.MemPool.Contains(idA))
	assert.False(t, snap.MemPool.Contains(idB))
	assert.Empty(t, snap.Undos)

	out, ok := st.Get(model.TxIn{PrevTxId: idB, Index: 0})
	assert.True(t, ok)
	assert.Equal(t, int64(20), out.Out.Value)
}

// Scenario 6: topological normalization. tx_c depends on an output of
// tx_d; once tx_d is invalidated by a tip change, tx_c becomes
// unresolvable and both are dropped in dependency order.
func TestTopologicalNormalizationDropsDependentChain(t *testing.T) {
	st := store.NewMemStore(mkBlockHash(0))
	// Seed the output that tx_d will spend.
	seed := model.TxIn{PrevTxId: mkTxId(50), Index: 0}
	err := st.WriteBatch([]store.BatchOp{
		store.AddTxOut(seed, model.TxOutAux{Out: model.TxOut{Value: 100}}),
	})
	assert.NoError(t, err)

	guard := NewGuard(model.NewTxpLD(st, mkBlockHash(0)))
	verifier := verify.NewTxVerifier(nil)

	txD := model.Tx{
		Inputs:  []model.TxIn{seed},
		Outputs: []model.TxOut{{Value: 100}},
	}
	idD := mkTxId(1)
	assert.Equal(t, Added(), ProcessTx(st, guard, verifier, 10, idD, model.TxAux{Tx: txD}))

	txC := model.Tx{
		Inputs:  []model.TxIn{{PrevTxId: idD, Index: 0}},
		Outputs: []model.TxOut{{Value: 100}},
	}
	idC := mkTxId(2)
	assert.Equal(t, Added(), ProcessTx(st, guard, verifier, 10, idC, model.TxAux{Tx: txC}))

	order, ok := TopsortTxs(guard.Snapshot().MemPool)
	assert.True(t, ok)
	assert.Equal(t, []model.TxId{idD, idC}, order)

	// Now a block spends the seed directly via a third tx, invalidating
	// tx_d (its input is gone) and transitively tx_c.
	txE := model.Tx{Inputs: []model.TxIn{seed}, Outputs: []model.TxOut{{Value: 100}}}
	chain, err := model.NewAltChain([]model.Block{
		{PrevHash: mkBlockHash(0), HeaderHash: mkBlockHash(1), Txs: []model.TxAux{{Tx: txE}}},
	})
	assert.NoError(t, err)

	err = BlockApply(st, guard, verifier, chain, false)
	assert.NoError(t, err)

	snap := guard.Snapshot()
	assert.False(t, snap.MemPool.Contains(idD))
	assert.False(t, snap.MemPool.Contains(idC))
}

// L4: running Normalize twice in a row is a fixpoint.
func TestNormalizeIsIdempotent(t *testing.T) {
	st, guard, verifier := newTestFixture(t)
	tx1 := model.Tx{
		Inputs:  []model.TxIn{{PrevTxId: mkTxId(0), Index: 0}},
		Outputs: []model.TxOut{{Value: 100}},
	}
	assert.Equal(t, Added(), ProcessTx(st, guard, verifier, 10, mkTxId(1), model.TxAux{Tx: tx1}))

	Normalize(st, guard, verifier)
	first := guard.Snapshot()
	Normalize(st, guard, verifier)
	second := guard.Snapshot()

	assert.Equal(t, first.Tip, second.Tip)
	assert.Equal(t, first.MemPool.Ids(), second.MemPool.Ids())
	assert.Equal(t, len(first.Undos), len(second.Undos))
}
