// Package file implements the key-value backend as one JSON document per
// key under a data directory, the closest analog of the browser
// localStorage the original app persisted into.
package file

import (
	"fmt"
	"os"
	"path/filepath"
)

type KV struct {
	dir string
}

func New(dir string) (*KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &KV{dir: dir}, nil
}

func (kv *KV) path(key string) string {
	return filepath.Join(kv.dir, key+".json")
}

func (kv *KV) Get(key string) (string, bool, error) {
	raw, err := os.ReadFile(kv.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(raw), true, nil
}

// Set writes through a temp file and renames so a crashed write never
// leaves a truncated entry behind.
func (kv *KV) Set(key, value string) error {
	target := kv.path(key)
	tmp, err := os.CreateTemp(kv.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}
