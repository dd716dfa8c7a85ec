package localstore

import (
	"errors"

	"github.com/tidwall/buntdb"
)

// BuntDB is a file-backed medium with synchronous writes, so a successful Set
// is durable for the remainder of the session.
type BuntDB struct {
	db *buntdb.DB
}

// NewBuntDB opens (or creates) the data file. Pass ":memory:" for an
// ephemeral store.
func NewBuntDB(path string) (*BuntDB, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.SetConfig(buntdb.Config{SyncPolicy: buntdb.Always}); err != nil {
		db.Close()
		return nil, err
	}
	return &BuntDB{db: db}, nil
}

// Get returns the stored value and whether the key exists.
func (b *BuntDB) Get(key string) (string, bool, error) {
	var value string
	err := b.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores the value under key.
func (b *BuntDB) Set(key, value string) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, value, nil)
		return err
	})
}

// Delete removes the key. Unknown keys are a no-op.
func (b *BuntDB) Delete(key string) error {
	err := b.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key)
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil
	}
	return err
}

// Close releases the underlying database.
func (b *BuntDB) Close() error {
	return b.db.Close()
}
