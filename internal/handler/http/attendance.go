package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/attendance"
	"github.com/shiftyhq/shifty-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	BadgeIn(w http.ResponseWriter, r *http.Request)
	BadgeOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// BadgeIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BadgeIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.BadgeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BadgeIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.BadgeIn(r.Context(), req)
	if err != nil {
		slog.Error("BadgeIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Badged in successfully", record)
}

// BadgeOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BadgeOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.BadgeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BadgeOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.BadgeOut(r.Context(), req)
	if err != nil {
		slog.Error("BadgeOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := attendance.ListAttendanceRequest{
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	records, err := h.attendanceService.List(r.Context(), req)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
