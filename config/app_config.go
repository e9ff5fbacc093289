// Package config loads the transaction-processing core's configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Backend selects which store.UtxoStore implementation a node wires up.
type Backend string

const (
	BackendMemory  Backend = "memory"
	BackendLevelDB Backend = "leveldb"
)

// AppConfig is the global config for the transaction-processing core.
type AppConfig struct {
	// MaxLocalTxs is the mempool capacity (spec's MAX_LOCAL_TXS). Admission
	// rejects with Overwhelmed once the mempool holds this many txs.
	MaxLocalTxs int `yaml:"max_local_txs"`
	// Backend selects the UtxoStore implementation.
	Backend Backend `yaml:"backend"`
	// DataDir is the on-disk path for the leveldb backend; unused by memory.
	DataDir string `yaml:"data_dir"`
}

// Default returns the configuration this module ships with when no file is
// supplied.
func Default() AppConfig {
	return AppConfig{
		MaxLocalTxs: 5000,
		Backend:     BackendMemory,
		DataDir:     "./data/utxo",
	}
}

// Load reads YAML config from path, falling back to Default for any field
// left unset in the file.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
