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

func (h *AdminHandler) ListDrops(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_drops.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Drops":     h.Drops.List(),
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) NewDropForm(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_drop_form.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
		"Drop": models.Drop{
			Edition:  25,
			Price:    1000,
			Status:   models.DropUpcoming,
			DropDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		},
		"IsNew": true,
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// parseDropForm reads the drop fields shared by create and update.
func parseDropForm(r *http.Request, drop *models.Drop) {
	drop.Title = r.FormValue("title")
	drop.Description = r.FormValue("description")
	drop.Status = r.FormValue("status")
	drop.DropDate = r.FormValue("drop_date")

	if edition, err := strconv.Atoi(r.FormValue("edition")); err == nil {
		drop.Edition = edition
	}
	if price, err := strconv.ParseFloat(r.FormValue("price"), 64); err == nil {
		drop.Price = price
	}
	if remaining, err := strconv.Atoi(r.FormValue("remaining")); err == nil {
		drop.Remaining = remaining
	} else if drop.Status == models.DropAvailable && drop.Remaining == 0 {
		drop.Remaining = drop.Edition
	}
}

func (h *AdminHandler) CreateDrop(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB
		session.AddFlash(FlashMessage{Type: "error", Message: "Upload too large. Max 10MB."})
		http.Redirect(w, r, "/admin/drops/new", http.StatusSeeOther)
		return
	}

	var drop models.Drop
	parseDropForm(r, &drop)
	drop.Images = h.ingestFormMedia(r, session, nil)
	drop.Normalize()

	if err := drop.Validate(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
		http.Redirect(w, r, "/admin/drops/new", http.StatusSeeOther)
		return
	}

	if _, err := h.Drops.Save(drop); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Saving failed; changes may be lost on restart."})
		http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Drop added!"})
	http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
}

func (h *AdminHandler) EditDropForm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	drop, ok := h.Drops.Get(id)
	if !ok {
		http.Error(w, "Drop not found", http.StatusNotFound)
		return
	}

	tmpl := h.Templates.Get("admin_drop_form.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
		"Drop":      drop,
		"IsNew":     false,
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) UpdateDrop(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Upload too large. Max 10MB."})
		http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
		return
	}

	id := r.FormValue("id")
	drop, ok := h.Drops.Get(id)
	if !ok {
		session.AddFlash(FlashMessage{Type: "error", Message: "Drop not found."})
		http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
		return
	}

	parseDropForm(r, &drop)
	drop.Images = h.ingestFormMedia(r, session, drop.Images)
	drop.Normalize()

	if err := drop.Validate(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: err.Error()})
		http.Redirect(w, r, fmt.Sprintf("/admin/drops/edit?id=%s", id), http.StatusSeeOther)
		return
	}

	if _, err := h.Drops.Save(drop); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Saving failed; changes may be lost on restart."})
		http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Drop updated!"})
	http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteDrop(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	if err := h.Drops.Delete(id); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error deleting drop."})
		http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Drop deleted."})
	http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
}

func (h *AdminHandler) RemoveDropMedia(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	mediaID := r.FormValue("media_id")

	drop, ok := h.Drops.Get(id)
	if !ok {
		session.AddFlash(FlashMessage{Type: "error", Message: "Drop not found."})
		http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
		return
	}

	if len(drop.Images) <= 1 {
		session.AddFlash(FlashMessage{Type: "error", Message: "A drop needs at least one media entry."})
		http.Redirect(w, r, fmt.Sprintf("/admin/drops/edit?id=%s", id), http.StatusSeeOther)
		return
	}

	drop.Images = media.RemoveByID(drop.Images, mediaID)
	if _, err := h.Drops.Save(drop); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Saving failed; changes may be lost on restart."})
	}
	http.Redirect(w, r, fmt.Sprintf("/admin/drops/edit?id=%s", id), http.StatusSeeOther)
}

func (h *AdminHandler) ReorderDropMedia(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	from, _ := strconv.Atoi(r.FormValue("from"))
	to, _ := strconv.Atoi(r.FormValue("to"))

	drop, ok := h.Drops.Get(id)
	if !ok {
		session.AddFlash(FlashMessage{Type: "error", Message: "Drop not found."})
		http.Redirect(w, r, "/admin/drops", http.StatusSeeOther)
		return
	}

	drop.Images = media.Reorder(drop.Images, from, to)
	if _, err := h.Drops.Save(drop); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Saving failed; changes may be lost on restart."})
	}
	http.Redirect(w, r, fmt.Sprintf("/admin/drops/edit?id=%s", id), http.StatusSeeOther)
}
