package handlers

import (
	"log/slog"
	"net/http"

	"shopledger/internal/api/middleware"
	service "shopledger/internal/services"
	"shopledger/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		summary, err := h.dashboardService.Summary(r.Context())

		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)

	}
}
