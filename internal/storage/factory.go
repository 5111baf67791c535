package storage

import (
	"fmt"

	"github.com/davinsyabanp/SakuKu/internal"
	"github.com/davinsyabanp/SakuKu/internal/storage/file"
	"github.com/davinsyabanp/SakuKu/internal/storage/sqlite"
)

// NewKV builds the key-value backend selected by config.
func NewKV(cfg internal.StorageConfig) (KV, error) {
	switch cfg.Backend {
	case internal.StorageBackendFile:
		return file.New(cfg.DataDir)
	case internal.StorageBackendSQLite:
		return sqlite.New(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
