// Package media manages the ordered media list attached to portfolio items
// and drops: bounded appends, removal, drag-style reordering, and the
// classification of incoming files and URLs as image or video.
package media

import (
	"errors"
	"strings"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/content"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

// AddResult reports how a bounded append went.
type AddResult struct {
	Added    int
	Rejected int
}

// Append adds items to the list up to max total entries. Items beyond the
// remaining capacity are dropped and counted in Rejected.
func Append(list, items []models.MediaItem, max int) ([]models.MediaItem, AddResult) {
	slots := max - len(list)
	if slots < 0 {
		slots = 0
	}
	accepted := items
	if len(items) > slots {
		accepted = items[:slots]
	}
	out := append(append([]models.MediaItem{}, list...), accepted...)
	return out, AddResult{Added: len(accepted), Rejected: len(items) - len(accepted)}
}

// RemoveByID removes the entry with the given id. No-op if absent.
func RemoveByID(list []models.MediaItem, id string) []models.MediaItem {
	for i, item := range list {
		if item.ID == id {
			out := make([]models.MediaItem, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return list
}

// Reorder moves the element at from to position to, shifting the elements
// between them. Equal or out-of-range indices leave the list unchanged.
func Reorder(list []models.MediaItem, from, to int) []models.MediaItem {
	if from == to || from < 0 || to < 0 || from >= len(list) || to >= len(list) {
		return list
	}
	out := make([]models.MediaItem, 0, len(list))
	out = append(out, list...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]models.MediaItem{moved}, out[to:]...)...)
	return out
}

var videoExtensions = []string{".mp4", ".webm", ".mov", ".avi"}

var videoHosts = []string{"youtube", "vimeo"}

// IsVideoType reports whether a declared media type is a video.
func IsVideoType(contentType string) bool {
	return strings.HasPrefix(contentType, "video/")
}

// IsVideoURL classifies a raw URL: a known video file extension or a known
// video-hosting domain marker makes it a video.
func IsVideoURL(raw string) bool {
	lower := strings.ToLower(raw)
	trimmed := lower
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	for _, ext := range videoExtensions {
		if strings.HasSuffix(trimmed, ext) {
			return true
		}
	}
	for _, host := range videoHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

// FromURL normalizes a raw URL string to a MediaItem.
func FromURL(raw string) (models.MediaItem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.MediaItem{}, errors.New("empty URL")
	}
	kind := models.MediaImage
	if IsVideoURL(raw) {
		kind = models.MediaVideo
	}
	return models.MediaItem{ID: content.NewID(), URL: raw, Type: kind}, nil
}
