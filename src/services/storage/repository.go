// Package storage provides the local key-value storage used to persist the
// logged-in user's profile between runs.
package storage

import (
	"errors"

	"chatflow/src/models"
)

// KeyValueStore is a flat string-keyed byte store.
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// IsNotFound reports whether err means the key is absent.
func IsNotFound(err error) bool {
	var nf *models.NotFoundError
	return errors.As(err, &nf)
}

func notFound(key string) error {
	return &models.NotFoundError{Message: "key not found: " + key}
}
