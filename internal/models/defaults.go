package models

import "time"

// DefaultSettings returns the branding used until the operator saves their own.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		BrandTagline: "Sculptural art that dwells in the space between darkness and elegance.",
		Email:        "contact@mrtz.art",
		Instagram:    "https://instagram.com/mrtz.art",
		HeroTitle:    "Sculpting the Shadows",
		HeroSubtitle: "Where darkness meets elegance, form emerges from the void.",
	}
}

// DefaultPortfolio seeds the gallery when no portfolio document exists yet.
func DefaultPortfolio() []PortfolioItem {
	return []PortfolioItem{
		{
			ID:          "1",
			Images:      []MediaItem{{ID: "1a", URL: "/static/img/sculpture-1.jpg", Type: MediaImage}},
			Title:       "Emergence I",
			Year:        "2024",
			Category:    "Biomechanical",
			Description: "A meditation on organic and mechanical fusion.",
		},
		{
			ID:          "2",
			Images:      []MediaItem{{ID: "2a", URL: "/static/img/sculpture-2.jpg", Type: MediaImage}},
			Title:       "Vessel of Shadows",
			Year:        "2024",
			Category:    "Organic Forms",
			Description: "Inspired by deep-sea creatures.",
		},
		{
			ID:          "3",
			Images:      []MediaItem{{ID: "3a", URL: "/static/img/sculpture-3.jpg", Type: MediaImage}},
			Title:       "Silent Sentinel",
			Year:        "2023",
			Category:    "Figurative",
			Description: "A guardian figure emerging from darkness.",
		},
		{
			ID:          "4",
			Images:      []MediaItem{{ID: "4a", URL: "/static/img/sculpture-4.jpg", Type: MediaImage}},
			Title:       "Nocturne",
			Year:        "2024",
			Category:    "Abstract",
			Description: "Pure form dancing with shadow.",
		},
	}
}

// DefaultDrops seeds the drops page. The sample upcoming drop lands a week out.
func DefaultDrops() []Drop {
	return []Drop{
		{
			ID:          "1",
			Images:      []MediaItem{{ID: "1a", URL: "/static/img/sculpture-3.jpg", Type: MediaImage}},
			Title:       "The Awakening",
			Edition:     25,
			Price:       2500,
			Status:      DropUpcoming,
			DropDate:    time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
			Description: "Limited edition series.",
		},
		{
			ID:          "2",
			Images:      []MediaItem{{ID: "2a", URL: "/static/img/sculpture-1.jpg", Type: MediaImage}},
			Title:       "Biomech Series I",
			Edition:     50,
			Price:       1800,
			Status:      DropAvailable,
			Remaining:   23,
			Description: "The first in a series of biomechanical explorations.",
		},
	}
}
