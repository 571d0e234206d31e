package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

func TestPortfolioMigratesLegacyDocument(t *testing.T) {
	b := NewMemoryBinding()
	legacy := `[{"id":"7","image":"/static/img/old.jpg","title":"Old Piece","year":"2022","category":"Surreal","description":"from before"}]`
	require.NoError(t, b.Write("mrtz-portfolio", []byte(legacy)))

	p := NewPortfolio(b)
	items := p.List()
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, "7", got.ID)
	assert.Equal(t, "Old Piece", got.Title)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "7a", got.Images[0].ID)
	assert.Equal(t, "/static/img/old.jpg", got.Images[0].URL)
	assert.Equal(t, models.MediaImage, got.Images[0].Type)
}

func TestPortfolioCurrentKeyWinsOverLegacy(t *testing.T) {
	b := NewMemoryBinding()
	require.NoError(t, b.Write("mrtz-portfolio", []byte(`[{"id":"old","image":"/old.jpg","title":"Old"}]`)))
	require.NoError(t, b.Write("mrtz-portfolio-v2", []byte(`{"version":2,"items":[{"id":"new","title":"New","images":[{"id":"na","url":"/new.jpg","type":"image"}]}]}`)))

	p := NewPortfolio(b)
	items := p.List()
	require.Len(t, items, 1)
	assert.Equal(t, "New", items[0].Title)
}

func TestPortfolioBrokenLegacyFallsBackToDefaults(t *testing.T) {
	b := NewMemoryBinding()
	require.NoError(t, b.Write("mrtz-portfolio", []byte("garbage")))

	p := NewPortfolio(b)
	assert.Len(t, p.List(), 4)
}
