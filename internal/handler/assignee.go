// internal/handler/assignee.go
package handler

import (
	"net/http"

	"github.com/opsdesk/taskboard/internal/middleware"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/service"
)

// AssigneeHandler manages the user directory tasks are assigned from.
type AssigneeHandler struct {
	users *service.UserService
}

func NewAssigneeHandler(users *service.UserService) *AssigneeHandler {
	return &AssigneeHandler{users: users}
}

func (h *AssigneeHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), middleware.UserFrom(r.Context()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string][]*model.User{"users": users})
}

func (h *AssigneeHandler) StoreHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, r, err)
		return
	}

	user, err := h.users.Create(r.Context(), middleware.UserFrom(r.Context()), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]*model.User{"user": user})
}

func (h *AssigneeHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	var input service.UpdateUserInput
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, r, err)
		return
	}

	user, err := h.users.Update(r.Context(), middleware.UserFrom(r.Context()), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]*model.User{"user": user})
}

func (h *AssigneeHandler) DestroyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if err := h.users.Delete(r.Context(), middleware.UserFrom(r.Context()), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
