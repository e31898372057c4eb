package config

// StorageConfig holds settings for the finished-game ledger.
type StorageConfig struct {
	// DataDir is the ledger directory; empty disables the ledger
	DataDir string

	// InMemory keeps the ledger out of the filesystem, for tests
	InMemory bool
}

// NewStorageConfig creates a StorageConfig with the ledger disabled.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// Enabled reports whether finished games should be recorded.
func (s *StorageConfig) Enabled() bool {
	return s.DataDir != "" || s.InMemory
}
