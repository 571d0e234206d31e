package content

import (
	"encoding/json"
	"fmt"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

const (
	dropsKey       = "mrtz-drops-v2"
	dropsLegacyKey = "mrtz-drops"
)

type legacyDrop struct {
	ID          string  `json:"id"`
	Image       string  `json:"image"`
	Title       string  `json:"title"`
	Edition     int     `json:"edition"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	DropDate    string  `json:"dropDate"`
	Description string  `json:"description"`
	Remaining   int     `json:"remaining"`
}

// NewDrops returns the drops repository over the given binding.
func NewDrops(b Binding) *Collection[models.Drop] {
	return NewCollection(Config[models.Drop]{
		Binding:   b,
		Key:       dropsKey,
		LegacyKey: dropsLegacyKey,
		Defaults:  models.DefaultDrops,
		Migrate:   migrateDrops,
		SetID: func(d *models.Drop, id string) {
			d.ID = id
		},
	})
}

func migrateDrops(raw json.RawMessage) ([]models.Drop, error) {
	var legacy []legacyDrop
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("decoding legacy drops: %w", err)
	}

	drops := make([]models.Drop, 0, len(legacy))
	for _, old := range legacy {
		drop := models.Drop{
			ID:          old.ID,
			Title:       old.Title,
			Edition:     old.Edition,
			Price:       old.Price,
			Status:      old.Status,
			DropDate:    old.DropDate,
			Description: old.Description,
			Remaining:   old.Remaining,
		}
		if old.Image != "" {
			drop.Images = []models.MediaItem{{
				ID:   old.ID + "a",
				URL:  old.Image,
				Type: models.MediaImage,
			}}
		}
		drop.Normalize()
		drops = append(drops, drop)
	}
	return drops, nil
}
