package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/absence"
	"github.com/shiftyhq/shifty-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// Create implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.absenceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence request filed successfully", created)
}

// Decide implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req absence.DecideAbsenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := h.absenceService.Decide(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Decide absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, decided)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.absenceService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		slog.Error("List absences service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListByEmployee implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	requests, err := h.absenceService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
