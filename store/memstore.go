package store

import (
	"sync"

	"github.com/coreledger/txpcore/model"
)

// MemStore is a mutex-guarded, in-memory UtxoStore. It is the reference
// backend used by tests and by single-process nodes that do not need
// durability across restarts.
type MemStore struct {
	mu   sync.RWMutex
	utxo map[model.TxIn]model.TxOutAux
	tip  model.BlockHeaderHash
}

// NewMemStore returns an empty store with the given genesis tip.
func NewMemStore(genesisTip model.BlockHeaderHash) *MemStore {
	return &MemStore{
		utxo: make(map[model.TxIn]model.TxOutAux),
		tip:  genesisTip,
	}
}

func (s *MemStore) Get(k model.TxIn) (model.TxOutAux, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.utxo[k]
	return v, ok
}

func (s *MemStore) Tip() model.BlockHeaderHash {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tip
}

// WriteBatch applies ops under a single lock acquisition. A Go map cannot
// fail a well-formed write mid-batch, so once the lock is held this cannot
// partially apply.
func (s *MemStore) WriteBatch(ops []BatchOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range ops {
		switch op.Kind {
		case OpPutTip:
			s.tip = op.Tip
		case OpAddTxOut:
			s.utxo[op.TxIn] = op.TxOut
		case OpDelTxIn:
			delete(s.utxo, op.TxIn)
		}
	}
	return nil
}

// Len reports the number of live UTXO entries, for tests.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.utxo)
}
