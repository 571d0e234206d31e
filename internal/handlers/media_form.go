package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/media"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

// ingestFormMedia collects uploaded files (field "media", repeatable) and an
// optional raw URL (field "media_url") from an already-parsed multipart form
// and appends them to list, bounded by the per-item media limit. Per-file
// failures flash and skip; the batch continues.
func (h *AdminHandler) ingestFormMedia(r *http.Request, session *sessions.Session, list []models.MediaItem) []models.MediaItem {
	var incoming []models.MediaItem

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["media"] {
			file, err := header.Open()
			if err != nil {
				session.AddFlash(FlashMessage{Type: "error", Message: "Could not read " + header.Filename + "."})
				continue
			}
			item, err := h.Ingestor.FromUpload(file, header)
			file.Close()
			if err != nil {
				if errors.Is(err, media.ErrUnsupportedType) {
					session.AddFlash(FlashMessage{Type: "error", Message: header.Filename + ": unsupported file type."})
				} else {
					session.AddFlash(FlashMessage{Type: "error", Message: "Failed to process " + header.Filename + "."})
				}
				continue
			}
			incoming = append(incoming, item)
		}
	}

	if raw := r.FormValue("media_url"); strings.TrimSpace(raw) != "" {
		if item, err := media.FromURL(raw); err == nil {
			incoming = append(incoming, item)
		}
	}

	if len(incoming) == 0 {
		return list
	}

	out, result := media.Append(list, incoming, h.MaxMedia)
	if result.Rejected > 0 {
		session.AddFlash(FlashMessage{
			Type:    "error",
			Message: fmt.Sprintf("Added %d media item(s); %d over the limit of %d were dropped.", result.Added, result.Rejected, h.MaxMedia),
		})
	} else if result.Added > 0 {
		session.AddFlash(FlashMessage{
			Type:    "success",
			Message: fmt.Sprintf("Added %d media item(s).", result.Added),
		})
	}
	return out
}
