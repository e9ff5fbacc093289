package txp

import (
	"github.com/coreledger/txpcore/logging"
	"github.com/coreledger/txpcore/model"
	"github.com/coreledger/txpcore/store"
	"github.com/coreledger/txpcore/verify"
)

var log = logging.For("txp")

// ProcessTxKind enumerates the outcomes of admission.
type ProcessTxKind int

const (
	ResAdded ProcessTxKind = iota
	ResKnown
	ResOverwhelmed
	ResInvalid
)

// ProcessTxRes is the admission outcome, returned by value and never
// raised as an error: Invalid carries a human-readable reason.
type ProcessTxRes struct {
	Kind   ProcessTxKind
	Reason string
}

func Added() ProcessTxRes       { return ProcessTxRes{Kind: ResAdded} }
func Known() ProcessTxRes       { return ProcessTxRes{Kind: ResKnown} }
func Overwhelmed() ProcessTxRes { return ProcessTxRes{Kind: ResOverwhelmed} }
func Invalid(reason string) ProcessTxRes {
	return ProcessTxRes{Kind: ResInvalid, Reason: reason}
}

func (r ProcessTxRes) String() string {
	switch r.Kind {
	case ResAdded:
		return "Added"
	case ResKnown:
		return "Known"
	case ResOverwhelmed:
		return "Overwhelmed"
	case ResInvalid:
		return "Invalid(" + r.Reason + ")"
	default:
		return "Unknown"
	}
}

// ProcessTx atomically admits one transaction into the TxpLD guarded by
// guard, provided the tip has not moved and the mempool has room. See
// spec.md §4.4 for the full algorithm; this is a direct translation.
func ProcessTx(st store.UtxoStore, guard *Guard, verifier *verify.TxVerifier, maxLocalTxs int, id model.TxId, aux model.TxAux) ProcessTxRes {
	tipBefore := st.Tip()

	// Pre-resolve inputs outside the lock so disk reads never happen while
	// holding it; the tip check below guards against races this creates.
	resolved := make(map[model.TxIn]model.TxOutAux, len(aux.Tx.Inputs))
	for _, in := range aux.Tx.Inputs {
		if out, ok := st.Get(in); ok {
			resolved[in] = out
		}
	}

	return Modify(guard, func(ld model.TxpLD) (ProcessTxRes, model.TxpLD) {
		if ld.Tip != tipBefore {
			return Invalid("Tips aren't same"), ld
		}
		if ld.MemPool.Size() >= maxLocalTxs {
			return Overwhelmed(), ld
		}
		if ld.MemPool.Contains(id) {
			return Known(), ld
		}

		resolver := func(in model.TxIn) (model.TxOutAux, bool) {
			if ld.View.Deleted(in) {
				return model.TxOutAux{}, false
			}
			if out, ok := ld.View.Added(in); ok {
				return out, true
			}
			out, ok := resolved[in]
			return out, ok
		}

		if err := verifier.VerifyTx(true, resolver, aux.Tx, aux.Witness); err != nil {
			return Invalid(err.Error()), ld
		}

		spent := make([]model.TxOutAux, len(aux.Tx.Inputs))
		for i, in := range aux.Tx.Inputs {
			out, ok := resolver(in)
			if !ok {
				log.WithField("input", in).Panic("txpcore: input not resolved during undo construction")
			}
			spent[i] = out
		}

		ld.View.ApplyTx(id, aux.Tx, aux.Distribution)
		ld.MemPool.Insert(id, aux)
		ld.Undos[id] = model.Undo{Spent: spent}

		return Added(), ld
	})
}
