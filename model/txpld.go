package model

// TxpLD is the composite local transaction-processing state: the UTXO
// overlay, the mempool, the per-tx undo records needed to reverse mempool
// entries, and the tip the whole snapshot was taken against.
//
// Invariants (enforced by txp.Modify callers, not by this struct
// itself):
//   - Undos.keys() == MemPool.txs.keys()
//   - every mempool tx was verified against View at admission time
//   - Tip equals the UtxoStore's committed tip as of the last set/normalize
type TxpLD struct {
	View    *UtxoView
	MemPool *MemPool
	Undos   map[TxId]Undo
	Tip     BlockHeaderHash
}

// NewTxpLD builds an empty TxpLD rooted at base, with the given tip.
func NewTxpLD(base UtxoStoreReader, tip BlockHeaderHash) TxpLD {
	return TxpLD{
		View:    NewUtxoView(base),
		MemPool: NewMemPool(),
		Undos:   make(map[TxId]Undo),
		Tip:     tip,
	}
}
