package state

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDBPreferences persists preferences in a LevelDB directory. Keys are
// namespaced so the database can share a data directory with other stores.
type LevelDBPreferences struct {
	db *leveldb.DB
}

const prefKeyPrefix = "pref/"

// OpenLevelDBPreferences opens (or creates) the database at path.
func OpenLevelDBPreferences(path string) (*LevelDBPreferences, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("could not open preference db: %w", err)
	}
	return &LevelDBPreferences{db: db}, nil
}

func (p *LevelDBPreferences) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

func (p *LevelDBPreferences) Get(key string) (string, bool, error) {
	data, err := p.db.Get([]byte(prefKeyPrefix+key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read preference %q: %w", key, err)
	}
	return string(data), true, nil
}

func (p *LevelDBPreferences) Put(key, value string) error {
	if err := p.db.Put([]byte(prefKeyPrefix+key), []byte(value), nil); err != nil {
		return fmt.Errorf("could not write preference %q: %w", key, err)
	}
	return nil
}
