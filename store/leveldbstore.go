package store

import (
	"bytes"
	"encoding/gob"

	"github.com/coreledger/txpcore/model"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// tipKey is a reserved key that can never collide with an encoded TxIn,
// since TxIn keys are always exactly 36 bytes (32-byte TxId + 4-byte index)
// and this key is shorter.
var tipKey = []byte("txpcore/tip")

// LevelStore is a disk-backed UtxoStore over goleveldb. Encoding follows
// the indexer example's encode-then-put shape: gob for values, a fixed
// binary layout for keys.
type LevelStore struct {
	db *leveldb.DB
}

// OpenLevelStore opens (creating if absent) a goleveldb database at path.
func OpenLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, err
	}
	return &LevelStore{db: db}, nil
}

func (s *LevelStore) Close() error {
	return s.db.Close()
}

func encodeTxIn(k model.TxIn) []byte {
	buf := make([]byte, 36)
	copy(buf[:32], k.PrevTxId[:])
	buf[32] = byte(k.Index >> 24)
	buf[33] = byte(k.Index >> 16)
	buf[34] = byte(k.Index >> 8)
	buf[35] = byte(k.Index)
	return buf
}

func encodeTxOutAux(v model.TxOutAux) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeTxOutAux(data []byte) (model.TxOutAux, error) {
	var v model.TxOutAux
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return model.TxOutAux{}, err
	}
	return v, nil
}

func (s *LevelStore) Get(k model.TxIn) (model.TxOutAux, bool) {
	data, err := s.db.Get(encodeTxIn(k), nil)
	if err != nil {
		return model.TxOutAux{}, false
	}
	v, err := decodeTxOutAux(data)
	if err != nil {
		return model.TxOutAux{}, false
	}
	return v, true
}

func (s *LevelStore) Tip() model.BlockHeaderHash {
	data, err := s.db.Get(tipKey, nil)
	if err != nil {
		return model.BlockHeaderHash{}
	}
	var h model.BlockHeaderHash
	copy(h[:], data)
	return h
}

// WriteBatch commits ops as a single leveldb.Batch, which goleveldb applies
// atomically: either all keys land or none do.
func (s *LevelStore) WriteBatch(ops []BatchOp) error {
	b := new(leveldb.Batch)
	for _, op := range ops {
		switch op.Kind {
		case OpPutTip:
			b.Put(tipKey, op.Tip[:])
		case OpAddTxOut:
			data, err := encodeTxOutAux(op.TxOut)
			if err != nil {
				return err
			}
			b.Put(encodeTxIn(op.TxIn), data)
		case OpDelTxIn:
			b.Delete(encodeTxIn(op.TxIn))
		}
	}
	return s.db.Write(b, nil)
}
