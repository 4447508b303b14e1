// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/opsdesk/taskboard/internal/domain"
	"github.com/opsdesk/taskboard/internal/repository"
)

type ErrorResponse struct {
	BaseResponse
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondServiceError translates domain errors into the taxonomy the
// frontend expects: field-keyed validation messages, opaque 403s, plain
// 404s, and a generic 500 for anything unexpected.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		respondWithJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "Validation failed",
			Fields: fieldMessages(validationErrs),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidPIN):
		respondWithError(w, http.StatusUnauthorized, "Invalid PIN")
	case errors.Is(err, domain.ErrUnauthenticated):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrDivisionNameTaken):
		respondWithError(w, http.StatusConflict, "Division name already taken")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrTaskUpdateNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrDivisionNotFound),
		errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "requestID", chimw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func fieldMessages(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		name := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			fields[name] = "is required"
		case "min":
			fields[name] = fmt.Sprintf("must have at least %s characters or items", e.Param())
		case "email":
			fields[name] = "must be a valid email address"
		case "oneof":
			fields[name] = fmt.Sprintf("must be one of: %s", e.Param())
		default:
			fields[name] = fmt.Sprintf("failed %s validation", e.Tag())
		}
	}
	return fields
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload", domain.ErrInvalidInput)
	}
	return nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name)
	}
	return id, nil
}

func intQuery(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// PageLink is one navigation entry of a paginated section: previous, a
// page number, or next. URL is nil when the step isn't available.
type PageLink struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// buildPageLinks produces prev / numbered / next links for one paginated
// section, keeping every other query parameter (the other section's page
// included) untouched.
func buildPageLinks(r *http.Request, pageParam string, pg repository.Pagination) []PageLink {
	links := make([]PageLink, 0, pg.LastPage+2)

	pageURL := func(page int) *string {
		query := cloneQuery(r.URL.Query())
		query.Set(pageParam, strconv.Itoa(page))
		u := r.URL.Path + "?" + query.Encode()
		return &u
	}

	prev := PageLink{Label: "Previous"}
	if pg.CurrentPage > 1 {
		prev.URL = pageURL(pg.CurrentPage - 1)
	}
	links = append(links, prev)

	for page := 1; page <= pg.LastPage; page++ {
		links = append(links, PageLink{
			URL:    pageURL(page),
			Label:  strconv.Itoa(page),
			Active: page == pg.CurrentPage,
		})
	}

	next := PageLink{Label: "Next"}
	if pg.CurrentPage < pg.LastPage {
		next.URL = pageURL(pg.CurrentPage + 1)
	}
	links = append(links, next)

	return links
}

func cloneQuery(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vals := range values {
		out[key] = append([]string(nil), vals...)
	}
	return out
}
