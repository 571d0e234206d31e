package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/content"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

// SiteHandler serves the public pages. Everything it renders comes from the
// same repositories the admin panel edits.
type SiteHandler struct {
	Portfolio    *content.Collection[models.PortfolioItem]
	Drops        *content.Collection[models.Drop]
	Settings     *content.Settings
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	items := h.Portfolio.List()
	if len(items) > 4 {
		items = items[:4]
	}

	var preview []models.Drop
	for _, d := range h.Drops.List() {
		if d.Status != models.DropSoldOut {
			preview = append(preview, d)
		}
		if len(preview) == 2 {
			break
		}
	}

	session, _ := h.SessionStore.Get(r, "public-session")
	data := map[string]interface{}{
		"Settings":  h.Settings.Get(),
		"Items":     items,
		"Drops":     preview,
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Gallery renders the portfolio grid, optionally filtered by category.
func (h *SiteHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("gallery.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	selected := r.URL.Query().Get("category")
	if selected != "" && !models.ValidCategory(selected) {
		selected = ""
	}

	items := h.Portfolio.List()
	if selected != "" {
		filtered := make([]models.PortfolioItem, 0, len(items))
		for _, item := range items {
			if item.Category == selected {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	data := map[string]interface{}{
		"Settings":   h.Settings.Get(),
		"Items":      items,
		"Categories": models.Categories,
		"Selected":   selected,
	}
	tmpl.Execute(w, data)
}

// Drops partitions the collection for the drops page: upcoming (countdown),
// available (remaining count), and sold out ("past drops").
func (h *SiteHandler) DropsPage(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("drops.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	var upcoming, available, past []models.Drop
	for _, d := range h.Drops.List() {
		switch d.Status {
		case models.DropUpcoming:
			upcoming = append(upcoming, d)
		case models.DropAvailable:
			available = append(available, d)
		case models.DropSoldOut:
			past = append(past, d)
		}
	}

	data := map[string]interface{}{
		"Settings":  h.Settings.Get(),
		"Upcoming":  upcoming,
		"Available": available,
		"Past":      past,
	}
	tmpl.Execute(w, data)
}

func (h *SiteHandler) About(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("about.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Settings": h.Settings.Get(),
	}
	tmpl.Execute(w, data)
}

func (h *SiteHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("notfound.html")
	if tmpl == nil {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	tmpl.Execute(w, map[string]interface{}{
		"Settings": h.Settings.Get(),
	})
}
