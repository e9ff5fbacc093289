package verify

import (
	"github.com/coreledger/txpcore/model"
	"github.com/coreledger/txpcore/utils"
)

// NewRSAWitnessVerifier builds a WitnessVerifier that authorizes an input
// by checking a PSS signature over the spending tx's id against the public
// key carried in the resolved output's Destination field. This is
// spec.md §1's verifySignature(...) collaborator made concrete with the
// RSA/SHA256 machinery in utils, grounded on the teacher's
// BytesToPublicKey-then-Verify pattern in utils/transaction_utils.go.
func NewRSAWitnessVerifier() WitnessVerifier {
	return func(in model.TxIn, resolved model.TxOutAux, tx model.Tx, w model.TxWitness) bool {
		idx := -1
		for i, candidate := range tx.Inputs {
			if candidate == in {
				idx = i
				break
			}
		}
		if idx < 0 || idx >= len(w.Proofs) {
			return false
		}

		pub := utils.BytesToPublicKey(resolved.Out.Destination)
		if pub == nil {
			return false
		}

		id := utils.HashTx(tx)
		return utils.Verify(id[:], pub, w.Proofs[idx])
	}
}
