package content

import (
	"encoding/json"
	"fmt"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

const (
	portfolioKey       = "mrtz-portfolio-v2"
	portfolioLegacyKey = "mrtz-portfolio"
)

// legacyPortfolioItem is the pre-media-list shape: one image URL per item.
type legacyPortfolioItem struct {
	ID          string `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Year        string `json:"year"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// NewPortfolio returns the portfolio repository over the given binding.
func NewPortfolio(b Binding) *Collection[models.PortfolioItem] {
	return NewCollection(Config[models.PortfolioItem]{
		Binding:   b,
		Key:       portfolioKey,
		LegacyKey: portfolioLegacyKey,
		Defaults:  models.DefaultPortfolio,
		Migrate:   migratePortfolio,
		SetID: func(p *models.PortfolioItem, id string) {
			p.ID = id
		},
	})
}

func migratePortfolio(raw json.RawMessage) ([]models.PortfolioItem, error) {
	var legacy []legacyPortfolioItem
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("decoding legacy portfolio: %w", err)
	}

	items := make([]models.PortfolioItem, 0, len(legacy))
	for _, old := range legacy {
		item := models.PortfolioItem{
			ID:          old.ID,
			Title:       old.Title,
			Year:        old.Year,
			Category:    old.Category,
			Description: old.Description,
		}
		if old.Image != "" {
			item.Images = []models.MediaItem{{
				ID:   old.ID + "a",
				URL:  old.Image,
				Type: models.MediaImage,
			}}
		}
		items = append(items, item)
	}
	return items, nil
}
