package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/content"
)

func TestReadMissingKey(t *testing.T) {
	s := NewTestStore(t)

	_, err := s.Read("mrtz-portfolio-v2")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestWriteThenRead(t *testing.T) {
	s := NewTestStore(t)

	doc := []byte(`{"version":2,"items":[]}`)
	require.NoError(t, s.Write("mrtz-drops-v2", doc))

	got, err := s.Read("mrtz-drops-v2")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestWriteOverwrites(t *testing.T) {
	s := NewTestStore(t)

	require.NoError(t, s.Write("mrtz-settings", []byte(`{"email":"a@b.c"}`)))
	require.NoError(t, s.Write("mrtz-settings", []byte(`{"email":"x@y.z"}`)))

	got, err := s.Read("mrtz-settings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"email":"x@y.z"}`), got)
}

func TestKeysAreIndependent(t *testing.T) {
	s := NewTestStore(t)

	require.NoError(t, s.Write("mrtz-portfolio-v2", []byte("a")))
	require.NoError(t, s.Write("mrtz-drops-v2", []byte("b")))

	got, err := s.Read("mrtz-portfolio-v2")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)
}
