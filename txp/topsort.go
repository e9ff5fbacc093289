package txp

import "github.com/coreledger/txpcore/model"

// TopsortTxs orders mempool transactions by dependency: if tx_b spends an
// output of tx_a that is itself in the mempool, tx_a precedes tx_b. Ties
// (transactions with no remaining dependency ordering between them) break
// by insertion order. Implemented as Kahn's algorithm on the induced
// dependency graph. ok is false only if a cycle is detected, which cannot
// happen for valid UTXO transactions and is treated by callers as a
// defensive "reset the mempool" signal.
func TopsortTxs(pool *model.MemPool) (order []model.TxId, ok bool) {
	ids := pool.Ids()
	indexOf := make(map[model.TxId]int, len(ids))
	for i, id := range ids {
		indexOf[id] = i
	}

	// producerOf maps an output's TxIn back to the mempool tx that created
	// it, so we can find in-mempool dependencies of each tx's inputs. The
	// mempool key is already each tx's id, so no separate hashing is
	// needed here.
	producerOf := make(map[model.TxIn]model.TxId)
	pool.Each(func(id model.TxId, aux model.TxAux) {
		for j := range aux.Tx.Outputs {
			producerOf[model.TxIn{PrevTxId: id, Index: uint32(j)}] = id
		}
	})

	adj := make(map[model.TxId][]model.TxId) // producer -> consumers
	indegree := make(map[model.TxId]int, len(ids))
	for _, id := range ids {
		indegree[id] = 0
	}
	pool.Each(func(id model.TxId, aux model.TxAux) {
		deps := make(map[model.TxId]struct{})
		for _, in := range aux.Tx.Inputs {
			if producer, isLocal := producerOf[in]; isLocal && producer != id {
				deps[producer] = struct{}{}
			}
		}
		for producer := range deps {
			adj[producer] = append(adj[producer], id)
			indegree[id]++
		}
	})

	// Kahn's algorithm: ready set ordered by original insertion order.
	ready := make([]model.TxId, 0, len(ids))
	for _, id := range ids {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	visited := make(map[model.TxId]bool, len(ids))
	for len(ready) > 0 {
		// pop the earliest-inserted ready tx.
		best := 0
		for i := 1; i < len(ready); i++ {
			if indexOf[ready[i]] < indexOf[ready[best]] {
				best = i
			}
		}
		cur := ready[best]
		ready = append(ready[:best], ready[best+1:]...)

		order = append(order, cur)
		visited[cur] = true

		for _, next := range adj[cur] {
			indegree[next]--
			if indegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if len(order) != len(ids) {
		return nil, false
	}
	return order, true
}
