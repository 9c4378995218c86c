package bench

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// CheckpointCache persists generated corpora to a small on-disk Badger
// database so repeated benchmark runs over the same corpus shape skip
// regeneration. This is the one place in the module that writes to
// disk: the core store itself stays in-memory only, per spec.md's
// explicit non-persistence requirement.
type CheckpointCache struct {
	db *badger.DB
}

// OpenCheckpointCache opens (creating if necessary) a Badger database
// rooted at dir.
func OpenCheckpointCache(dir string) (*CheckpointCache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("bench: open checkpoint cache: %w", err)
	}
	return &CheckpointCache{db: db}, nil
}

// Close releases the underlying Badger database.
func (c *CheckpointCache) Close() error {
	return c.db.Close()
}

// Save stores corpus under key, overwriting any prior checkpoint.
func (c *CheckpointCache) Save(key string, corpus *Corpus) error {
	buf, err := json.Marshal(corpus)
	if err != nil {
		return fmt.Errorf("bench: marshal corpus: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), buf)
	})
}

// Load retrieves the corpus previously saved under key. It reports
// ok=false (no error) when no checkpoint exists for key.
func (c *CheckpointCache) Load(key string) (corpus *Corpus, ok bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(key))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		return item.Value(func(val []byte) error {
			var loaded Corpus
			if unmarshalErr := json.Unmarshal(val, &loaded); unmarshalErr != nil {
				return unmarshalErr
			}
			corpus = &loaded
			ok = true
			return nil
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("bench: load checkpoint %s: %w", key, err)
	}
	return corpus, ok, nil
}
