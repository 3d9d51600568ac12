// Package checkpoint persists captured iterator states under a name, so a
// long-running computation can resume its iteration after a restart.
package checkpoint

import (
	"fmt"

	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"

	"go.llib.dev/resumable/consterr"
	"go.llib.dev/resumable/iterators"
	"go.llib.dev/resumable/statekit"
)

// ErrNotFound is returned when no snapshot is stored under the requested name.
const ErrNotFound consterr.Error = "NotFound"

var bucketName = []byte(`checkpoints`)

// NewLocal opens a bolt backed checkpoint store at the given path.
func NewLocal(path string) (*Local, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Local{db: db}, nil
}

type Local struct {
	db *bolt.DB
}

// Close the local database and release the file lock
func (l *Local) Close() error {
	return l.db.Close()
}

// Save stores the state under the given name, replacing any previous snapshot.
func (l *Local) Save(name string, state iterators.State) error {
	value, err := statekit.Marshal(state)
	if err != nil {
		return err
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(name), value)
	})
}

// SaveNew stores the state under a generated identifier and returns it.
func (l *Local) SaveNew(state iterators.State) (string, error) {
	name := uuid.NewV4().String()
	return name, l.Save(name, state)
}

// Load reads the named snapshot back into the given concrete state value.
func (l *Local) Load(name string, into iterators.State) error {
	var value []byte
	err := l.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		v := bucket.Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return err
	}
	return statekit.Unmarshal(value, into)
}

// Delete removes the named snapshot; deleting an absent name is not an error.
func (l *Local) Delete(name string) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(name))
	})
}

// Names lists the names of every stored snapshot.
func (l *Local) Names() ([]string, error) {
	var names []string
	err := l.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
