package storage

import "errors"

// ErrKeyNotFound is returned by Get when no value is stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// Provider is the durable key-value surface the journal mirrors itself to.
// Writes are best-effort from the application's point of view: the in-memory
// state stays authoritative for the session and a failed Set is logged, not
// surfaced. Remove is idempotent; removing an absent key is not an error.
type Provider interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
}
