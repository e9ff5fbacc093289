package model

// MemPool is an insertion-ordered map of admitted but not-yet-confirmed
// transactions. Insertion order is preserved because Normalize falls back
// to it as a tie-breaker once the topological sort is done.
type MemPool struct {
	txs   map[TxId]TxAux
	order []TxId
}

// NewMemPool returns an empty mempool.
func NewMemPool() *MemPool {
	return &MemPool{
		txs: make(map[TxId]TxAux),
	}
}

func (p *MemPool) Size() int {
	return len(p.txs)
}

func (p *MemPool) Contains(id TxId) bool {
	_, ok := p.txs[id]
	return ok
}

func (p *MemPool) Get(id TxId) (TxAux, bool) {
	aux, ok := p.txs[id]
	return aux, ok
}

// Insert adds id -> aux, appending to the insertion order. Callers must
// check Contains first; inserting an id that is already present replaces
// its TxAux but keeps its original position in the order.
func (p *MemPool) Insert(id TxId, aux TxAux) {
	if _, exists := p.txs[id]; !exists {
		p.order = append(p.order, id)
	}
	p.txs[id] = aux
}

func (p *MemPool) Remove(id TxId) {
	if _, ok := p.txs[id]; !ok {
		return
	}
	delete(p.txs, id)
	for i, o := range p.order {
		if o == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Each iterates transactions in insertion order.
func (p *MemPool) Each(fn func(id TxId, aux TxAux)) {
	for _, id := range p.order {
		fn(id, p.txs[id])
	}
}

// Ids returns the ids currently held, in insertion order.
func (p *MemPool) Ids() []TxId {
	out := make([]TxId, len(p.order))
	copy(out, p.order)
	return out
}

// Clone returns a deep-enough copy for use as the basis of a new TxpLD
// (e.g. when Normalize rebuilds the mempool from scratch it starts from a
// fresh empty one rather than cloning, but Clone is useful for tests and
// for defensive snapshots).
func (p *MemPool) Clone() *MemPool {
	c := NewMemPool()
	p.Each(func(id TxId, aux TxAux) {
		c.Insert(id, aux)
	})
	return c
}
