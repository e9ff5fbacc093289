package verify

import (
	"testing"

	"github.com/coreledger/txpcore/model"
	"github.com/stretchr/testify/assert"
)

func mkTxId(b byte) model.TxId {
	var id model.TxId
	id[0] = b
	return id
}

func TestVerifyTxRejectsUnresolvedInput(t *testing.T) {
	v := NewTxVerifier(nil)
	resolver := func(model.TxIn) (model.TxOutAux, bool) { return model.TxOutAux{}, false }
	tx := model.Tx{Inputs: []model.TxIn{{PrevTxId: mkTxId(1)}}}

	err := v.VerifyTx(true, resolver, tx, model.TxWitness{})
	assert.ErrorContains(t, err, "input not found")
}

func TestVerifyTxRejectsValueCreation(t *testing.T) {
	v := NewTxVerifier(nil)
	in := model.TxIn{PrevTxId: mkTxId(1)}
	resolver := func(k model.TxIn) (model.TxOutAux, bool) {
		if k == in {
			return model.TxOutAux{Out: model.TxOut{Value: 10}}, true
		}
		return model.TxOutAux{}, false
	}
	tx := model.Tx{
		Inputs:  []model.TxIn{in},
		Outputs: []model.TxOut{{Value: 20}},
	}

	err := v.VerifyTx(true, resolver, tx, model.TxWitness{})
	assert.ErrorContains(t, err, "exceeds input value")
}

func TestVerifyTxRejectsDuplicateInputWhenPure(t *testing.T) {
	v := NewTxVerifier(nil)
	in := model.TxIn{PrevTxId: mkTxId(1)}
	resolver := func(model.TxIn) (model.TxOutAux, bool) {
		return model.TxOutAux{Out: model.TxOut{Value: 10}}, true
	}
	tx := model.Tx{Inputs: []model.TxIn{in, in}}

	err := v.VerifyTx(true, resolver, tx, model.TxWitness{})
	assert.ErrorContains(t, err, "duplicate input")
}

func TestVerifyTxRejectsFailedWitness(t *testing.T) {
	v := NewTxVerifier(func(model.TxIn, model.TxOutAux, model.Tx, model.TxWitness) bool { return false })
	in := model.TxIn{PrevTxId: mkTxId(1)}
	resolver := func(model.TxIn) (model.TxOutAux, bool) {
		return model.TxOutAux{Out: model.TxOut{Value: 10}}, true
	}
	tx := model.Tx{Inputs: []model.TxIn{in}}

	err := v.VerifyTx(true, resolver, tx, model.TxWitness{})
	assert.ErrorContains(t, err, "witness check failed")
}

func TestVerifyAndApplyTxsAppliesOnSuccessAndStopsOnFirstFailure(t *testing.T) {
	v := NewTxVerifier(nil)
	base := fakeBase{entries: map[model.TxIn]model.TxOutAux{
		{PrevTxId: mkTxId(1)}: {Out: model.TxOut{Value: 100}},
	}}
	view := model.NewUtxoView(&base)

	goodTx := model.Tx{
		Inputs:  []model.TxIn{{PrevTxId: mkTxId(1)}},
		Outputs: []model.TxOut{{Value: 100}},
	}
	badTx := model.Tx{
		Inputs:  []model.TxIn{{PrevTxId: mkTxId(99)}},
		Outputs: []model.TxOut{{Value: 1}},
	}

	txs := []TxWithAux{
		{WithHash: model.WithHash{Id: mkTxId(2), Tx: goodTx}},
		{WithHash: model.WithHash{Id: mkTxId(3), Tx: badTx}},
	}

	undos, err := v.VerifyAndApplyTxs(false, view, txs)
	assert.Error(t, err)
	assert.Nil(t, undos)

	// The good tx's effect survived even though the batch failed overall,
	// matching the short-circuit-without-rollback contract: callers that
	// need all-or-nothing across a batch must use a fresh view per call.
	_, ok := view.Get(model.TxIn{PrevTxId: mkTxId(2), Index: 0})
	assert.True(t, ok)
}

type fakeBase struct {
	entries map[model.TxIn]model.TxOutAux
}

func (f *fakeBase) Get(k model.TxIn) (model.TxOutAux, bool) {
	v, ok := f.entries[k]
	return v, ok
}
