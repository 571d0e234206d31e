package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

func (h *AdminHandler) ListCommissions(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 10 // Default limit
	}

	offset := (page - 1) * limit

	requests, err := h.Store.GetAllCommissions(limit, offset)
	if err != nil {
		http.Error(w, "Error fetching commission requests", http.StatusInternalServerError)
		return
	}

	total, err := h.Store.GetTotalCommissionsCount()
	if err != nil {
		http.Error(w, "Error fetching commission count", http.StatusInternalServerError)
		return
	}

	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	tmpl := h.Templates.Get("admin_commissions.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Requests":    requests,
		"Statuses":    models.CommissionStatuses,
		"CsrfField":   csrf.TemplateField(r),
		"Flashes":     GetFlash(session),
		"CurrentPage": page,
		"TotalPages":  totalPages,
		"Limit":       limit,
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) UpdateCommissionStatus(w http.ResponseWriter, r *http.Request) {
	idStr := r.FormValue("id")
	status := r.FormValue("status")

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	valid := false
	for _, known := range models.CommissionStatuses {
		if status == known {
			valid = true
			break
		}
	}
	if !valid {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateCommissionStatus(id, status); err != nil {
		http.Error(w, "Error updating status", http.StatusInternalServerError)
		return
	}

	session, _ := h.SessionStore.Get(r, "admin-session")
	session.AddFlash(FlashMessage{Type: "success", Message: "Commission request updated!"})
	session.Save(r, w)
	http.Redirect(w, r, "/admin/commissions", http.StatusSeeOther)
}
