package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/store"
)

func newAuthHandler(t *testing.T) *AdminHandler {
	t.Helper()

	s := store.NewTestStore(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.CreateUser("admin", string(hash)))

	return &AdminHandler{
		Store:        s,
		SessionStore: sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")),
	}
}

func postLogin(t *testing.T, h *AdminHandler, username, password string) *http.Response {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.LoginPost(rec, req)
	return rec.Result()
}

// protectedProbe reports whether a request carrying the given cookies makes
// it past the auth middleware.
func protectedProbe(t *testing.T, h *AdminHandler, cookies []*http.Cookie) (reached bool, resp *http.Response) {
	t.Helper()

	handler := h.AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return reached, rec.Result()
}

func TestFreshSessionIsLoggedOut(t *testing.T) {
	h := newAuthHandler(t)

	reached, resp := protectedProbe(t, h, nil)
	assert.False(t, reached)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestLoginWrongPasswordStaysLoggedOut(t *testing.T) {
	h := newAuthHandler(t)

	resp := postLogin(t, h, "admin", "wrong")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	reached, _ := protectedProbe(t, h, resp.Cookies())
	assert.False(t, reached)
}

func TestLoginUnknownUserStaysLoggedOut(t *testing.T) {
	h := newAuthHandler(t)

	resp := postLogin(t, h, "ghost", "correct-horse")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	reached, _ := protectedProbe(t, h, resp.Cookies())
	assert.False(t, reached)
}

func TestLoginCorrectPasswordGrantsSession(t *testing.T) {
	h := newAuthHandler(t)

	resp := postLogin(t, h, "admin", "correct-horse")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
	require.NotEmpty(t, resp.Cookies())

	reached, probeResp := protectedProbe(t, h, resp.Cookies())
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, probeResp.StatusCode)
}

func TestLogoutRevokesSession(t *testing.T) {
	h := newAuthHandler(t)

	loginResp := postLogin(t, h, "admin", "correct-horse")
	require.NotEmpty(t, loginResp.Cookies())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	for _, c := range loginResp.Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.Logout(rec, req)
	logoutResp := rec.Result()
	assert.Equal(t, http.StatusSeeOther, logoutResp.StatusCode)

	reached, _ := protectedProbe(t, h, logoutResp.Cookies())
	assert.False(t, reached)
}
