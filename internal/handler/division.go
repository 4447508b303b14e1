// internal/handler/division.go
package handler

import (
	"net/http"

	"github.com/opsdesk/taskboard/internal/middleware"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/service"
)

type DivisionHandler struct {
	divisions *service.DivisionService
}

func NewDivisionHandler(divisions *service.DivisionService) *DivisionHandler {
	return &DivisionHandler{divisions: divisions}
}

func (h *DivisionHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	divisions, err := h.divisions.List(r.Context(), middleware.UserFrom(r.Context()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string][]*model.Division{"divisions": divisions})
}

func (h *DivisionHandler) StoreHandler(w http.ResponseWriter, r *http.Request) {
	var input service.DivisionInput
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, r, err)
		return
	}

	division, err := h.divisions.Create(r.Context(), middleware.UserFrom(r.Context()), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]*model.Division{"division": division})
}

func (h *DivisionHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	var input service.DivisionInput
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, r, err)
		return
	}

	division, err := h.divisions.Update(r.Context(), middleware.UserFrom(r.Context()), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]*model.Division{"division": division})
}

func (h *DivisionHandler) DestroyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if err := h.divisions.Delete(r.Context(), middleware.UserFrom(r.Context()), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
