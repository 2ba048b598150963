package http

import (
	"log/slog"
	"net/http"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/analytics"
	"github.com/shiftyhq/shifty-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	OvertimeReport(w http.ResponseWriter, r *http.Request)
	TardinessReport(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

func reportRequest(r *http.Request) analytics.ReportRequest {
	return analytics.ReportRequest{
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}
}

// OvertimeReport implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) OvertimeReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.OvertimeReport(r.Context(), reportRequest(r))
	if err != nil {
		slog.Error("OvertimeReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// TardinessReport implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) TardinessReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.TardinessReport(r.Context(), reportRequest(r))
	if err != nil {
		slog.Error("TardinessReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
