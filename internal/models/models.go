package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Media types.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// MediaItem is one image or video attached to a portfolio item or drop.
// The URL may be a served upload path, a remote URL, or a data: URI.
type MediaItem struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type PortfolioItem struct {
	ID          string      `json:"id"`
	Images      []MediaItem `json:"images"`
	Title       string      `json:"title"`
	Year        string      `json:"year"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
}

func (p PortfolioItem) EntityID() string { return p.ID }

// Categories is the fixed label set offered by the editor.
var Categories = []string{
	"Abstract",
	"Biomechanical",
	"Figurative",
	"Organic Forms",
	"Surreal",
	"Dark Fantasy",
}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Validate reports why a portfolio item may not be saved.
func (p PortfolioItem) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	if len(p.Images) == 0 {
		return errors.New("at least one image or video is required")
	}
	if !ValidCategory(p.Category) {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	return nil
}

// Drop statuses.
const (
	DropUpcoming  = "upcoming"
	DropAvailable = "available"
	DropSoldOut   = "sold_out"
)

type Drop struct {
	ID          string      `json:"id"`
	Images      []MediaItem `json:"images"`
	Title       string      `json:"title"`
	Edition     int         `json:"edition"`
	Price       float64     `json:"price"`
	Status      string      `json:"status"`
	DropDate    string      `json:"dropDate"`
	Description string      `json:"description"`
	Remaining   int         `json:"remaining,omitempty"`
}

func (d Drop) EntityID() string { return d.ID }

func ValidDropStatus(s string) bool {
	return s == DropUpcoming || s == DropAvailable || s == DropSoldOut
}

func (d Drop) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("title is required")
	}
	if len(d.Images) == 0 {
		return errors.New("at least one image or video is required")
	}
	if d.Edition < 1 {
		return errors.New("edition size must be at least 1")
	}
	if d.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if !ValidDropStatus(d.Status) {
		return fmt.Errorf("unknown status %q", d.Status)
	}
	if d.Status == DropAvailable {
		if d.Remaining < 0 {
			return errors.New("remaining cannot be negative")
		}
		if d.Remaining > d.Edition {
			return fmt.Errorf("remaining (%d) cannot exceed edition size (%d)", d.Remaining, d.Edition)
		}
	}
	return nil
}

// Normalize clears the fields that are meaningless for the current status,
// so a drop flipped from upcoming to available does not keep a stale date.
func (d *Drop) Normalize() {
	if d.Status != DropUpcoming {
		d.DropDate = ""
	}
	if d.Status != DropAvailable {
		d.Remaining = 0
	}
}

// SiteSettings is the singleton branding/contact record, replaced wholesale
// on save. Schema tags double as form field names on the settings page.
type SiteSettings struct {
	BrandTagline string `json:"brandTagline" schema:"brandTagline"`
	Email        string `json:"email" schema:"email"`
	Instagram    string `json:"instagram" schema:"instagram"`
	Twitter      string `json:"twitter" schema:"twitter"`
	TikTok       string `json:"tiktok" schema:"tiktok"`
	YouTube      string `json:"youtube" schema:"youtube"`
	AboutText    string `json:"aboutText" schema:"aboutText"`
	HeroTitle    string `json:"heroTitle" schema:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle" schema:"heroSubtitle"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
}

// Commission request statuses.
const (
	CommissionNew          = "new"
	CommissionInDiscussion = "in_discussion"
	CommissionAccepted     = "accepted"
	CommissionDeclined     = "declined"
	CommissionCompleted    = "completed"
)

var CommissionStatuses = []string{
	CommissionNew,
	CommissionInDiscussion,
	CommissionAccepted,
	CommissionDeclined,
	CommissionCompleted,
}

// CommissionRequest is a visitor's inquiry from the commission page.
type CommissionRequest struct {
	ID          int       `json:"id"`
	Ref         string    `json:"ref"` // public "A7X9..." reference
	Name        string    `json:"name" schema:"name"`
	Email       string    `json:"email" schema:"email"`
	Tier        string    `json:"tier" schema:"tier"`
	Description string    `json:"description" schema:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Commission tiers offered on the public page.
var CommissionTiers = []string{"Essence", "Statement", "Monument"}
