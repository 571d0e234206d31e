package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

const settingsKey = "mrtz-settings"

// Settings is the singleton branding record. Unlike the collections it has
// no ids and no ordering; saves replace the whole document.
type Settings struct {
	mu      sync.Mutex
	binding Binding
	current models.SiteSettings
	loaded  bool
}

func NewSettings(b Binding) *Settings {
	return &Settings{binding: b}
}

func (s *Settings) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.current = models.DefaultSettings()

	raw, err := s.binding.Read(settingsKey)
	if err != nil {
		if err != ErrNotFound {
			slog.Warn("Reading settings failed, using defaults", "error", err)
		}
		return
	}
	var stored models.SiteSettings
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("Stored settings unreadable, using defaults", "error", err)
		return
	}
	s.current = stored
}

func (s *Settings) Get() models.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.current
}

// Save replaces the settings wholesale. A failed write keeps the new value
// in memory and returns the error for the caller to report.
func (s *Settings) Save(settings models.SiteSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	s.current = settings
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.binding.Write(settingsKey, raw); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
