package storage

import (
	"os"
	"path/filepath"
	"time"

	"chatflow/src/models"

	bolt "go.etcd.io/bbolt"
)

const localStorageBucket = "local_storage"

// BoltStore is a KeyValueStore backed by a single bbolt file.
type BoltStore struct {
	db *bolt.DB
}

var _ KeyValueStore = (*BoltStore)(nil)

// OpenBoltStore opens (or creates) the store at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &models.StorageError{Message: "failed to create storage directory", Err: err}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, &models.StorageError{Message: "failed to open local storage " + path, Err: err}
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(localStorageBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, &models.StorageError{Message: "failed to create storage bucket", Err: err}
	}
	return &BoltStore{db: db}, nil
}

// Get returns a copy of the value stored under key.
func (s *BoltStore) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(localStorageBucket)).Get([]byte(key))
		if v == nil {
			return notFound(key)
		}
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Put stores value under key.
func (s *BoltStore) Put(key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(localStorageBucket)).Put([]byte(key), value)
	})
	if err != nil {
		return &models.StorageError{Message: "failed to write " + key, Err: err}
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *BoltStore) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(localStorageBucket)).Delete([]byte(key))
	})
	if err != nil {
		return &models.StorageError{Message: "failed to delete " + key, Err: err}
	}
	return nil
}

// Close releases the file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
