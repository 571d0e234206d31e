package handlers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/schema"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
)

var settingsDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true) // the CSRF token field rides along
	return d
}()

func (h *AdminHandler) SettingsForm(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_settings.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Settings":  h.Settings.Get(),
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// UpdateSettings replaces the whole settings record with the posted form.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := r.ParseForm(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid form data."})
		http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
		return
	}

	var settings models.SiteSettings
	if err := settingsDecoder.Decode(&settings, r.PostForm); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid form data."})
		http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
		return
	}

	if err := h.Settings.Save(settings); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Saving failed; changes may be lost on restart."})
		http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Settings saved!"})
	http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
}
