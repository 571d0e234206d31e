package handlers

import (
	"crypto/rand"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/schema"
	"github.com/gorilla/sessions"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/content"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/models"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/store"
)

// CommissionHandler serves the public commission page and stores inquiries.
type CommissionHandler struct {
	Store        *store.Store
	Settings     *content.Settings
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

var commissionDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func (h *CommissionHandler) Form(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("commission.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "public-session")
	data := map[string]interface{}{
		"Settings":  h.Settings.Get(),
		"Tiers":     models.CommissionTiers,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func generateRef() string {
	// 8 chars, uppercase alphanumeric without I, O, 1, 0
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "REQ" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}

func (h *CommissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "public-session")
	defer session.Save(r, w)

	if err := r.ParseForm(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid form data."})
		http.Redirect(w, r, "/commission", http.StatusSeeOther)
		return
	}

	var req models.CommissionRequest
	if err := commissionDecoder.Decode(&req, r.PostForm); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid form data."})
		http.Redirect(w, r, "/commission", http.StatusSeeOther)
		return
	}

	errors := make(map[string]string)
	if req.Name == "" {
		errors["name"] = "Your name is required."
	}
	if req.Email == "" {
		errors["email"] = "Email address is required."
	} else if !isValidEmail(req.Email) {
		errors["email"] = "Please enter a valid email address."
	}
	if req.Description == "" {
		errors["description"] = "Please describe your vision."
	}

	if len(errors) > 0 {
		for _, msg := range errors {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, "/commission", http.StatusSeeOther)
		return
	}

	req.Ref = generateRef()
	req.Status = models.CommissionNew

	if err := h.Store.CreateCommission(&req); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to send your request. Please try again."})
		http.Redirect(w, r, "/commission", http.StatusSeeOther)
		return
	}

	// MOCK EMAIL SENDING
	slog.Info("==========================================")
	slog.Info("📧 EMAIL SENT TO: " + h.Settings.Get().Email)
	slog.Info("Subject: New commission inquiry " + req.Ref)
	slog.Info("From: " + req.Name + " <" + req.Email + ">")
	slog.Info("Tier: " + req.Tier)
	slog.Info("==========================================")

	session.AddFlash(FlashMessage{Type: "success", Message: "Commission request received! I'll be in touch within 48 hours to discuss your vision."})
	http.Redirect(w, r, "/commission", http.StatusSeeOther)
}

// Basic email validation regex
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
