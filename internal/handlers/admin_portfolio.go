package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/csrf"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/media"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

func (h *AdminHandler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_portfolio.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Items":     h.Portfolio.List(),
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) NewPortfolioForm(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_portfolio_form.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(session),
		"Categories": models.Categories,
		"Item":       models.PortfolioItem{Year: currentYear(), Category: "Abstract"},
		"IsNew":      true,
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func currentYear() string {
	return strconv.Itoa(time.Now().Year())
}

func (h *AdminHandler) CreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB
		session.AddFlash(FlashMessage{Type: "error", Message: "Upload too large. Max 10MB."})
		http.Redirect(w, r, "/admin/portfolio/new", http.StatusSeeOther)
		return
	}

	item := models.PortfolioItem{
		Title:       r.FormValue("title"),
		Year:        r.FormValue("year"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}
	item.Images = h.ingestFormMedia(r, session, nil)

	if err := item.Validate(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
		http.Redirect(w, r, "/admin/portfolio/new", http.StatusSeeOther)
		return
	}

	if _, err := h.Portfolio.Save(item); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Saving failed; changes may be lost on restart."})
		http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Portfolio item added!"})
	http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
}

func (h *AdminHandler) EditPortfolioForm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	item, ok := h.Portfolio.Get(id)
	if !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	tmpl := h.Templates.Get("admin_portfolio_form.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(session),
		"Categories": models.Categories,
		"Item":       item,
		"IsNew":      false,
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) UpdatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Upload too large. Max 10MB."})
		http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
		return
	}

	id := r.FormValue("id")
	item, ok := h.Portfolio.Get(id)
	if !ok {
		session.AddFlash(FlashMessage{Type: "error", Message: "Item not found."})
		http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
		return
	}

	item.Title = r.FormValue("title")
	item.Year = r.FormValue("year")
	item.Category = r.FormValue("category")
	item.Description = r.FormValue("description")
	item.Images = h.ingestFormMedia(r, session, item.Images)

	if err := item.Validate(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
		http.Redirect(w, r, fmt.Sprintf("/admin/portfolio/edit?id=%s", id), http.StatusSeeOther)
		return
	}

	if _, err := h.Portfolio.Save(item); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Saving failed; changes may be lost on restart."})
		http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Portfolio item updated!"})
	http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
}

func (h *AdminHandler) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	if err := h.Portfolio.Delete(id); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error deleting item."})
		http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Item deleted."})
	http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
}

// RemovePortfolioMedia drops one media item from a saved portfolio piece.
// The last remaining item cannot be removed; a saved piece keeps at least one.
func (h *AdminHandler) RemovePortfolioMedia(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	mediaID := r.FormValue("media_id")

	item, ok := h.Portfolio.Get(id)
	if !ok {
		session.AddFlash(FlashMessage{Type: "error", Message: "Item not found."})
		http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
		return
	}

	if len(item.Images) <= 1 {
		session.AddFlash(FlashMessage{Type: "error", Message: "An item needs at least one media entry."})
		http.Redirect(w, r, fmt.Sprintf("/admin/portfolio/edit?id=%s", id), http.StatusSeeOther)
		return
	}

	item.Images = media.RemoveByID(item.Images, mediaID)
	if _, err := h.Portfolio.Save(item); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Saving failed; changes may be lost on restart."})
	}
	http.Redirect(w, r, fmt.Sprintf("/admin/portfolio/edit?id=%s", id), http.StatusSeeOther)
}

// ReorderPortfolioMedia moves one media item to a new position.
func (h *AdminHandler) ReorderPortfolioMedia(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	from, _ := strconv.Atoi(r.FormValue("from"))
	to, _ := strconv.Atoi(r.FormValue("to"))

	item, ok := h.Portfolio.Get(id)
	if !ok {
		session.AddFlash(FlashMessage{Type: "error", Message: "Item not found."})
		http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
		return
	}

	item.Images = media.Reorder(item.Images, from, to)
	if _, err := h.Portfolio.Save(item); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Saving failed; changes may be lost on restart."})
	}
	http.Redirect(w, r, fmt.Sprintf("/admin/portfolio/edit?id=%s", id), http.StatusSeeOther)
}
