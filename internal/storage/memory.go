package storage

// MemoryStore is an in-memory Provider used in tests. GetErr/SetErr/RemoveErr
// inject failures so callers can exercise the best-effort persistence paths.
type MemoryStore struct {
	records map[string][]byte

	GetErr    error
	SetErr    error
	RemoveErr error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	val, ok := s.records[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	val := make([]byte, len(value))
	copy(val, value)
	s.records[key] = val
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	delete(s.records, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Raw exposes the stored bytes for assertions in tests.
func (s *MemoryStore) Raw(key string) ([]byte, bool) {
	val, ok := s.records[key]
	return val, ok
}
