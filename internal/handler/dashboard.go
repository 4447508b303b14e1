// internal/handler/dashboard.go
package handler

import (
	"net/http"

	"github.com/opsdesk/taskboard/internal/middleware"
	"github.com/opsdesk/taskboard/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboard.Overview(r.Context(), middleware.UserFrom(r.Context()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]*service.Overview{"overview": overview})
}
