// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/auth"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/service"
)

type userContextKey string

var userKey userContextKey = "taskboard_user"

// SessionCookie carries the local session token between requests.
const SessionCookie = "taskboard_session"

// ExternalSessionParam is the query parameter the legacy system appends
// when it hands a browser over to us.
const ExternalSessionParam = "extsession"

// Session resolves the caller's identity. A valid local token wins and is
// never re-checked against the legacy system; failing that, an external
// session id on the URL is traded for a local session (provisioning the
// user if needed). Anything else continues anonymous — guarding routes is
// RequireUser's job.
func Session(tokens *auth.TokenManager, identity *service.IdentityService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractToken(r); token != "" {
				claims, err := tokens.Validate(token)
				if err == nil {
					if user := loadUser(r.Context(), identity, claims); user != nil {
						next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
						return
					}
				}
			}

			if sessionID := r.URL.Query().Get(ExternalSessionParam); sessionID != "" {
				out, err := identity.ResolveExternal(r.Context(), sessionID)
				switch {
				case err == nil:
					http.SetCookie(w, &http.Cookie{
						Name:     SessionCookie,
						Value:    out.Token,
						Path:     "/",
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
					next.ServeHTTP(w, r.WithContext(withUser(r.Context(), out.User)))
					return
				case errors.Is(err, domain.ErrSessionNotFound):
					// Unknown external session: fall through anonymous.
				default:
					slog.ErrorContext(r.Context(), "External session resolution failed", "error", err)
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects anonymous requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFrom(r.Context()) == nil {
			respondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom returns the authenticated user, or nil.
func UserFrom(ctx context.Context) *model.User {
	user, _ := ctx.Value(userKey).(*model.User)
	return user
}

func withUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func loadUser(ctx context.Context, identity *service.IdentityService, claims *auth.Claims) *model.User {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	user, err := identity.FindUser(ctx, id)
	if err != nil {
		return nil
	}
	return user
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
