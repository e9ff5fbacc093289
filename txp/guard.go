// Package txp implements the transaction-processing core: admission of
// loose transactions into the mempool, block apply/verify/rollback against
// the UtxoStore, and mempool renormalization after the tip moves.
package txp

import (
	"sync"

	"github.com/coreledger/txpcore/model"
)

// Guard is the single process-wide holder of TxpLD. Modify runs its
// mutator function with exclusive access, compare-and-swap style: no other
// TxpLD mutation interleaves while the mutator runs. This is the
// concrete mutex-backed realization of the modifyTxpLD primitive spec.md
// §5 describes.
type Guard struct {
	mu    sync.Mutex
	state model.TxpLD
}

// NewGuard seeds the guard with an initial TxpLD.
func NewGuard(initial model.TxpLD) *Guard {
	return &Guard{state: initial}
}

// Snapshot returns the current TxpLD. Only safe for read-only inspection
// (tests, diagnostics) since the returned View/MemPool are shared pointers
// that Modify may later replace wholesale.
func (g *Guard) Snapshot() model.TxpLD {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Modify runs fn with exclusive access to the current TxpLD and installs
// whatever TxpLD it returns as the new state, returning fn's result value.
func Modify[R any](g *Guard, fn func(model.TxpLD) (R, model.TxpLD)) R {
	g.mu.Lock()
	defer g.mu.Unlock()
	result, next := fn(g.state)
	g.state = next
	return result
}
