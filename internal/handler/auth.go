// internal/handler/auth.go
package handler

import (
	"net/http"
	"time"

	"github.com/opsdesk/taskboard/internal/middleware"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/service"
)

type AuthHandler struct {
	identity *service.IdentityService
}

func NewAuthHandler(identity *service.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

type loginRequest struct {
	PIN string `json:"pin"`
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// LoginHandler authenticates a PIN. Every failure is the same generic
// message; nothing in the response says whether the PIN was close.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, r, err)
		return
	}

	out, err := h.identity.LoginWithPIN(r.Context(), input.PIN)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    out.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         out.User,
		Token:        out.Token,
	})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:    middleware.SessionCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-1 * time.Hour),
	})

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// MeHandler returns the session's user, for the frontend to bootstrap.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]*model.User{"user": user})
}
