// Package verify implements pure verification of single transactions and
// the fold that verifies-and-applies a sequence of them against a shared
// UtxoView. Hashing and signature checking are consumed as injected
// functions, matching spec.md's framing of hash(x)/verifySignature(...) as
// external collaborators.
package verify

import (
	"fmt"

	"github.com/coreledger/txpcore/model"
)

// Resolver looks up the output an input refers to. Absent means the input
// does not resolve under the caller's chosen view.
type Resolver func(model.TxIn) (model.TxOutAux, bool)

// WitnessVerifier authorizes one input against the output it resolves to.
// This is the verifySignature(...) collaborator named in spec.md §1.
type WitnessVerifier func(in model.TxIn, resolved model.TxOutAux, tx model.Tx, w model.TxWitness) bool

// TxVerifier is the concrete Verifier: value conservation plus a pluggable
// per-input witness check.
type TxVerifier struct {
	CheckWitness WitnessVerifier
}

// NewTxVerifier builds a verifier with the given witness check. Passing nil
// accepts every witness, useful for tests that only exercise balance and
// structural rules.
func NewTxVerifier(checkWitness WitnessVerifier) *TxVerifier {
	if checkWitness == nil {
		checkWitness = func(model.TxIn, model.TxOutAux, model.Tx, model.TxWitness) bool { return true }
	}
	return &TxVerifier{CheckWitness: checkWitness}
}

// VerifyTx checks a single transaction against resolver: every input must
// resolve, witnesses must authorize their input, and output value must not
// exceed resolved input value. When pure is true it additionally rejects a
// transaction that spends the same input twice (structural law). With
// pure=false that check is skipped: VerifyAndApplyTxs passes its caller's
// flag through, and the shared view's del set only rejects an input spent
// by an earlier tx of the batch, not one repeated within a single tx.
func (v *TxVerifier) VerifyTx(pure bool, resolver Resolver, tx model.Tx, witness model.TxWitness) error {
	if pure {
		seen := make(map[model.TxIn]struct{}, len(tx.Inputs))
		for _, in := range tx.Inputs {
			if _, dup := seen[in]; dup {
				return fmt.Errorf("duplicate input %s in single transaction", in.PrevTxId)
			}
			seen[in] = struct{}{}
		}
	}

	var totalIn, totalOut int64
	for _, in := range tx.Inputs {
		resolved, ok := resolver(in)
		if !ok {
			return fmt.Errorf("input not found: %s:%d", in.PrevTxId, in.Index)
		}
		if !v.CheckWitness(in, resolved, tx, witness) {
			return fmt.Errorf("witness check failed for input %s:%d", in.PrevTxId, in.Index)
		}
		totalIn += resolved.Out.Value
	}
	for _, out := range tx.Outputs {
		if out.Value < 0 {
			return fmt.Errorf("negative output value %d", out.Value)
		}
		totalOut += out.Value
	}
	if totalOut > totalIn {
		return fmt.Errorf("output value %d exceeds input value %d", totalOut, totalIn)
	}
	return nil
}

// TxWithAux is one element of the verifyAndApplyTxs input: a hashed tx plus
// its witness and distribution.
type TxWithAux struct {
	WithHash     model.WithHash
	Witness      model.TxWitness
	Distribution model.TxDistribution
}

// VerifyAndApplyTxs verifies each tx in order against view, applying it to
// view on success before moving to the next. Returns the per-tx Undo list
// in the same order as the input, or the first error encountered (short-
// circuiting without applying that failing tx).
func (v *TxVerifier) VerifyAndApplyTxs(pure bool, view *model.UtxoView, txs []TxWithAux) ([]model.Undo, error) {
	undos := make([]model.Undo, 0, len(txs))
	for _, t := range txs {
		resolver := func(in model.TxIn) (model.TxOutAux, bool) {
			return view.Get(in)
		}
		if err := v.VerifyTx(pure, resolver, t.WithHash.Tx, t.Witness); err != nil {
			return nil, err
		}

		spent := make([]model.TxOutAux, len(t.WithHash.Tx.Inputs))
		for i, in := range t.WithHash.Tx.Inputs {
			resolved, ok := view.Get(in)
			if !ok {
				panic("txpcore: input not resolved after successful verification")
			}
			spent[i] = resolved
		}

		view.ApplyTx(t.WithHash.Id, t.WithHash.Tx, t.Distribution)
		undos = append(undos, model.Undo{Spent: spent})
	}
	return undos, nil
}
