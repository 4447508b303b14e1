// internal/handler/task.go
package handler

import (
	"net/http"

	"github.com/opsdesk/taskboard/internal/middleware"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/service"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// TaskSection is one board section plus its navigation links.
type TaskSection struct {
	service.TaskPage
	Links []PageLink `json:"links"`
}

type BoardResponse struct {
	BaseResponse
	Active    TaskSection `json:"active"`
	Completed TaskSection `json:"completed"`
}

// IndexHandler serves both board sections. Each section reads its own
// search/order/page parameters so paging one list leaves the other alone.
func (h *TaskHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())
	query := r.URL.Query()

	board, err := h.tasks.ListBoard(r.Context(), actor, service.ListInput{
		ActiveSearch:    query.Get("active_search"),
		ActiveOrder:     query.Get("active_order"),
		ActivePage:      intQuery(r, "active_page", 1),
		CompletedSearch: query.Get("completed_search"),
		CompletedOrder:  query.Get("completed_order"),
		CompletedPage:   intQuery(r, "completed_page", 1),
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BoardResponse{
		BaseResponse: BaseResponse{Ok: true},
		Active: TaskSection{
			TaskPage: board.Active,
			Links:    buildPageLinks(r, "active_page", board.Active.Pagination),
		},
		Completed: TaskSection{
			TaskPage: board.Completed,
			Links:    buildPageLinks(r, "completed_page", board.Completed.Pagination),
		},
	})
}

func (h *TaskHandler) ShowHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	task, err := h.tasks.Get(r.Context(), middleware.UserFrom(r.Context()), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]*model.Task{"task": task})
}

func (h *TaskHandler) StoreHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTaskInput
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, r, err)
		return
	}

	task, err := h.tasks.Create(r.Context(), middleware.UserFrom(r.Context()), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]*model.Task{"task": task})
}

func (h *TaskHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	var input service.UpdateTaskInput
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, r, err)
		return
	}

	task, err := h.tasks.Update(r.Context(), middleware.UserFrom(r.Context()), id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]*model.Task{"task": task})
}

func (h *TaskHandler) DestroyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if err := h.tasks.Delete(r.Context(), middleware.UserFrom(r.Context()), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *TaskHandler) StoreUpdateHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuidParam(r, "id")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	var input service.TaskUpdateInput
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, r, err)
		return
	}

	update, err := h.tasks.AddUpdate(r.Context(), middleware.UserFrom(r.Context()), taskID, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]*model.TaskUpdate{"update": update})
}

func (h *TaskHandler) EditUpdateHandler(w http.ResponseWriter, r *http.Request) {
	updateID, err := uuidParam(r, "updateID")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	var input service.TaskUpdateInput
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, r, err)
		return
	}

	update, err := h.tasks.EditUpdate(r.Context(), middleware.UserFrom(r.Context()), updateID, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]*model.TaskUpdate{"update": update})
}

func (h *TaskHandler) DestroyUpdateHandler(w http.ResponseWriter, r *http.Request) {
	updateID, err := uuidParam(r, "updateID")
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if err := h.tasks.DeleteUpdate(r.Context(), middleware.UserFrom(r.Context()), updateID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
