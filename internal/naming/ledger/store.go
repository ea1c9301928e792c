// Package ledger hosts contract invocations: persistent key-value storage,
// the ledger clock, authorization and event publication.
package ledger

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Store is the key-value collaborator. Keys are namespaced by component
// prefixes.
type Store interface {
	Get(key []byte) ([]byte, bool, error)
	Has(key []byte) (bool, error)
	Set(key, value []byte) error
	Remove(key []byte) error
	// Iterate visits keys with the given prefix in ascending order until fn
	// returns false or an error.
	Iterate(prefix []byte, fn func(key, value []byte) (bool, error)) error
}

// LevelStore is a Store backed by goleveldb.
type LevelStore struct {
	db *leveldb.DB
}

// OpenLevelStore opens or creates a database at path.
func OpenLevelStore(path string) (*LevelStore, error) {
	if path == "" {
		return nil, errors.New("leveldb path is required")
	}
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &LevelStore{db: db}, nil
}

// NewMemoryLevelStore returns a LevelStore on in-memory storage.
func NewMemoryLevelStore() (*LevelStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory leveldb: %w", err)
	}
	return &LevelStore{db: db}, nil
}

// Close releases the database.
func (s *LevelStore) Close() error {
	return s.db.Close()
}

func (s *LevelStore) Get(key []byte) ([]byte, bool, error) {
	value, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leveldb get: %w", err)
	}
	return value, true, nil
}

func (s *LevelStore) Has(key []byte) (bool, error) {
	ok, err := s.db.Has(key, nil)
	if err != nil {
		return false, fmt.Errorf("leveldb has: %w", err)
	}
	return ok, nil
}

func (s *LevelStore) Set(key, value []byte) error {
	if err := s.db.Put(key, value, nil); err != nil {
		return fmt.Errorf("leveldb put: %w", err)
	}
	return nil
}

func (s *LevelStore) Remove(key []byte) error {
	if err := s.db.Delete(key, nil); err != nil {
		return fmt.Errorf("leveldb delete: %w", err)
	}
	return nil
}

func (s *LevelStore) Iterate(prefix []byte, fn func(key, value []byte) (bool, error)) error {
	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {
		next, err := fn(iter.Key(), iter.Value())
		if err != nil {
			return err
		}
		if !next {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("leveldb iterate: %w", err)
	}
	return nil
}

// apply writes all pending changes in one atomic batch.
func (s *LevelStore) apply(changes []change) error {
	if len(changes) == 0 {
		return nil
	}
	batch := new(leveldb.Batch)
	for _, c := range changes {
		if c.deleted {
			batch.Delete(c.key)
			continue
		}
		batch.Put(c.key, c.value)
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("leveldb write batch: %w", err)
	}
	return nil
}
