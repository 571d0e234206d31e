package store

import "testing"

// NewTestStore creates a fresh in-memory store with the schema applied.
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := s.InitSchema(); err != nil {
		s.DB.Close()
		t.Fatalf("creating test schema: %v", err)
	}

	t.Cleanup(func() { s.DB.Close() })

	return s
}
