package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore is the default persistence backend: one file per record under a
// base directory.
type DiskvStore struct {
	d *diskv.Diskv
}

// NewDiskvStore opens (creating if needed) a diskv-backed store rooted at
// basePath.
func NewDiskvStore(basePath string) (*DiskvStore, error) {
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &DiskvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *DiskvStore) Get(key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, ErrKeyNotFound
	}
	val, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return val, nil
}

func (s *DiskvStore) Set(key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Remove(key string) error {
	err := s.d.Erase(key)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}
