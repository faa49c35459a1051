package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"gads-manager/internal/core/domain"
	"gads-manager/internal/core/port"
)

const (
	stateCookie   = "gads_oauth_state"
	stateMaxAge   = 300
	dashboardPath = "/dashboard"
)

// handleLogin redirects to Google's consent screen. Offline access with a
// forced consent prompt makes Google issue a refresh token on every login.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   stateMaxAge,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	authURL := h.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	http.Redirect(w, r, authURL, http.StatusTemporaryRedirect)
}

// handleCallback finishes the login: it verifies the state, exchanges the
// code and stores the refresh token in a new session. Every outcome
// redirects back to the dashboard, failures with an error query parameter.
func (h *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	state, err := r.Cookie(stateCookie)
	if err != nil || state.Value == "" || q.Get("state") != state.Value {
		h.redirectDashboard(w, r, url.Values{"error": {"invalid_state"}})
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1})

	if e := q.Get("error"); e != "" {
		h.logger.Warn("oauth error", slog.String("error", e), slog.String("description", q.Get("error_description")))
		h.redirectDashboard(w, r, url.Values{"error": {"oauth_error"}, "details": {e}})
		return
	}
	code := q.Get("code")
	if code == "" {
		h.redirectDashboard(w, r, url.Values{"error": {"no_code"}})
		return
	}

	token, err := h.oauth.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("token exchange error", slog.Any("error", err))
		h.redirectDashboard(w, r, url.Values{"error": {"token_exchange_failed"}})
		return
	}
	if token.RefreshToken == "" {
		h.redirectDashboard(w, r, url.Values{"error": {"no_refresh_token"}})
		return
	}

	now := h.now().UTC()
	sess := &domain.Session{
		ID:           uuid.NewString(),
		RefreshToken: token.RefreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(h.sessionTTL),
	}
	if err = h.sessions.Save(r.Context(), sess); err != nil {
		h.logger.Error("save session error", slog.Any("error", err))
		h.redirectDashboard(w, r, url.Values{"error": {"session_error"}})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	h.logger.Info("session created", slog.String("session_id", sess.ID))
	h.redirectDashboard(w, r, url.Values{"auth_success": {"true"}})
}

type authStatusResponse struct {
	Authenticated   bool    `json:"authenticated"`
	HasRefreshToken bool    `json:"hasRefreshToken"`
	Error           *string `json:"error"`
}

// handleAuthStatus never answers 401; an absent or expired session is
// reported as authenticated false.
func (h *Handler) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		writeJSON(w, http.StatusOK, authStatusResponse{}, h.logger)
		return
	}
	sess, err := h.sessions.Get(r.Context(), cookie.Value)
	switch {
	case errors.Is(err, port.ErrSessionNotFound):
		writeJSON(w, http.StatusOK, authStatusResponse{}, h.logger)
	case err != nil:
		h.logger.Error("auth status error", slog.Any("error", err))
		msg := "Failed to check authentication status"
		writeJSON(w, http.StatusInternalServerError, authStatusResponse{Error: &msg}, h.logger)
	default:
		writeJSON(w, http.StatusOK, authStatusResponse{
			Authenticated:   true,
			HasRefreshToken: sess.RefreshToken != "",
		}, h.logger)
	}
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if err = h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.logger.Error("delete session error", slog.Any("error", err))
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true}, h.logger)
}

func (h *Handler) redirectDashboard(w http.ResponseWriter, r *http.Request, q url.Values) {
	http.Redirect(w, r, h.cfg.BaseURL+dashboardPath+"?"+q.Encode(), http.StatusTemporaryRedirect)
}
