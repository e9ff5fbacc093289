package store

import (
	"fmt"

	"github.com/coreledger/txpcore/config"
	"github.com/coreledger/txpcore/model"
)

// Open wires a config.AppConfig's backend selection to a concrete
// UtxoStore. genesisTip seeds MemStore; LevelStore reads its tip (and
// everything else) from whatever is already on disk at cfg.DataDir.
func Open(cfg config.AppConfig, genesisTip model.BlockHeaderHash) (UtxoStore, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		return NewMemStore(genesisTip), nil
	case config.BackendLevelDB:
		return OpenLevelStore(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
