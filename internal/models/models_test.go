package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDrop() Drop {
	return Drop{
		ID:      "d1",
		Images:  []MediaItem{{ID: "m1", URL: "/a.jpg", Type: MediaImage}},
		Title:   "Test Drop",
		Edition: 10,
		Price:   500,
		Status:  DropAvailable,
	}
}

func TestDropValidate(t *testing.T) {
	require.NoError(t, validDrop().Validate())

	noTitle := validDrop()
	noTitle.Title = "  "
	assert.Error(t, noTitle.Validate())

	noMedia := validDrop()
	noMedia.Images = nil
	assert.Error(t, noMedia.Validate())

	zeroEdition := validDrop()
	zeroEdition.Edition = 0
	assert.Error(t, zeroEdition.Validate())

	negativePrice := validDrop()
	negativePrice.Price = -1
	assert.Error(t, negativePrice.Validate())

	badStatus := validDrop()
	badStatus.Status = "archived"
	assert.Error(t, badStatus.Validate())
}

func TestDropValidateRemainingBounds(t *testing.T) {
	d := validDrop()
	d.Remaining = d.Edition
	assert.NoError(t, d.Validate())

	d.Remaining = d.Edition + 1
	assert.Error(t, d.Validate())

	d.Remaining = -1
	assert.Error(t, d.Validate())

	// Remaining only matters while available.
	d.Status = DropSoldOut
	d.Remaining = d.Edition + 1
	assert.NoError(t, d.Validate())
}

func TestDropNormalize(t *testing.T) {
	d := validDrop()
	d.Status = DropSoldOut
	d.DropDate = "2026-01-01"
	d.Remaining = 4
	d.Normalize()
	assert.Empty(t, d.DropDate)
	assert.Zero(t, d.Remaining)

	u := validDrop()
	u.Status = DropUpcoming
	u.DropDate = "2026-12-01"
	u.Remaining = 4
	u.Normalize()
	assert.Equal(t, "2026-12-01", u.DropDate)
	assert.Zero(t, u.Remaining)

	a := validDrop()
	a.DropDate = "2026-12-01"
	a.Remaining = 4
	a.Normalize()
	assert.Empty(t, a.DropDate)
	assert.Equal(t, 4, a.Remaining)
}

func TestPortfolioItemValidate(t *testing.T) {
	item := PortfolioItem{
		Title:    "Piece",
		Category: "Abstract",
		Images:   []MediaItem{{ID: "m", URL: "/p.jpg", Type: MediaImage}},
	}
	require.NoError(t, item.Validate())

	noTitle := item
	noTitle.Title = ""
	assert.Error(t, noTitle.Validate())

	noMedia := item
	noMedia.Images = nil
	assert.Error(t, noMedia.Validate())

	badCategory := item
	badCategory.Category = "Minimalist"
	assert.Error(t, badCategory.Validate())
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("abstract"))
	assert.False(t, ValidCategory(""))
}
