package store

import (
	"database/sql"
	"fmt"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/content"
)

// Read and Write make the Store a content.Binding: one JSON document per
// fixed key, overwritten wholesale on save.

func (s *Store) Read(key string) ([]byte, error) {
	var value string
	err := s.DB.QueryRow(`SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *Store) Write(key string, value []byte) error {
	_, err := s.DB.Exec(`
		INSERT INTO documents (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("writing document %s: %w", key, err)
	}
	return nil
}
