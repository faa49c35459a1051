package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"gads-manager/internal/core/port"
)

const sessionCookie = "gads_session"

type refreshTokenKey struct{}

// requireSession resolves the session cookie and stores the session's
// refresh token in the request context. Requests without a live session get
// 401.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			h.writeUseCaseError(w, "session", port.ErrUnauthenticated)
			return
		}
		sess, err := h.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, port.ErrSessionNotFound) {
				h.logger.Error("session lookup error", slog.Any("error", err))
				h.writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			h.writeUseCaseError(w, "session", err)
			return
		}
		ctx := context.WithValue(r.Context(), refreshTokenKey{}, sess.RefreshToken)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func refreshTokenFrom(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(refreshTokenKey{}).(string)
	return tok, ok && tok != ""
}
