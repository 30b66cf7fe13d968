package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MKhiriev/go-bank/internal/config"
)

// jsonTable is a keyed set of records mirrored to a single JSON document.
// The document is read once on construction and rewritten after every
// mutation; with the path [config.MemoryPath] nothing touches the disk.
type jsonTable[T any] struct {
	path     string
	inMemory bool

	mu   sync.RWMutex
	rows map[string]T
}

type jsonTableState[T any] struct {
	Records map[string]T `json:"records"`
}

func newJSONTable[T any](path string) (*jsonTable[T], error) {
	if path == "" {
		path = config.MemoryPath
	}

	t := &jsonTable[T]{
		path:     path,
		inMemory: path == config.MemoryPath,
		rows:     make(map[string]T),
	}
	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *jsonTable[T]) get(key string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[key]
	return row, ok
}

func (t *jsonTable[T]) has(key string) bool {
	_, ok := t.get(key)
	return ok
}

// keys returns the stored keys in ascending order.
func (t *jsonTable[T]) keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Sorted(maps.Keys(t.rows))
}

func (t *jsonTable[T]) insert(key string, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; ok {
		return fmt.Errorf("%w: key %q", ErrAlreadyExists, key)
	}

	t.rows[key] = row
	if err := t.persist(); err != nil {
		delete(t.rows, key)
		return err
	}
	return nil
}

func (t *jsonTable[T]) update(key string, row T) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	old, ok := t.rows[key]
	if !ok {
		return false, nil
	}

	t.rows[key] = row
	if err := t.persist(); err != nil {
		t.rows[key] = old
		return false, err
	}
	return true, nil
}

func (t *jsonTable[T]) delete(key string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	old, ok := t.rows[key]
	if !ok {
		return false, nil
	}

	delete(t.rows, key)
	if err := t.persist(); err != nil {
		t.rows[key] = old
		return false, err
	}
	return true, nil
}

func (t *jsonTable[T]) load() error {
	if t.inMemory {
		return nil
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %w", ErrLoadingFile, t.path, err)
	}

	// an empty document is an empty table
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var st jsonTableState[T]
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrLoadingFile, t.path, err)
	}

	if st.Records != nil {
		t.rows = st.Records
	}

	return nil
}

// persist must be called with t.mu held.
func (t *jsonTable[T]) persist() error {
	if t.inMemory {
		return nil
	}

	dir := filepath.Dir(t.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir %s: %w", ErrPersistingFile, dir, err)
		}
	}

	payload, err := json.MarshalIndent(jsonTableState[T]{Records: t.rows}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrPersistingFile, t.path, err)
	}

	if err = os.WriteFile(t.path, payload, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistingFile, t.path, err)
	}

	return nil
}
