// Package storage persists application state as JSON documents under a small
// set of keys. Backends only need to store opaque bytes per key.
package storage

import "errors"

var (
	ErrNotFound  = errors.New("key not found")
	ErrNotLoaded = errors.New("storage not loaded")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Documents. Get returns ErrNotFound for a missing key.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
