// internal/handler/timeline.go
package handler

import (
	"net/http"

	"github.com/opsdesk/taskboard/internal/middleware"
	"github.com/opsdesk/taskboard/internal/model"
	"github.com/opsdesk/taskboard/internal/repository"
	"github.com/opsdesk/taskboard/internal/service"
)

type TimelineHandler struct {
	activity *service.ActivityService
}

func NewTimelineHandler(activity *service.ActivityService) *TimelineHandler {
	return &TimelineHandler{activity: activity}
}

type TimelineResponse struct {
	BaseResponse
	Activities []*model.Activity     `json:"activities"`
	Pagination repository.Pagination `json:"pagination"`
	Links      []PageLink            `json:"links"`
}

func (h *TimelineHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFrom(r.Context()) == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	activities, pg, err := h.activity.Timeline(r.Context(), intQuery(r, "page", 1))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TimelineResponse{
		BaseResponse: BaseResponse{Ok: true},
		Activities:   activities,
		Pagination:   pg,
		Links:        buildPageLinks(r, "page", pg),
	})
}
