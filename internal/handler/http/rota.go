package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicops/rota-backend-go/internal/domain/schedule"
	"github.com/clinicops/rota-backend-go/internal/handler/http/response"
)

type RotaHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	AutoSchedule(w http.ResponseWriter, r *http.Request)
	ClearWeek(w http.ResponseWriter, r *http.Request)
	Validation(w http.ResponseWriter, r *http.Request)

	WeeklyHours(w http.ResponseWriter, r *http.Request)
	PayCycleHours(w http.ResponseWriter, r *http.Request)

	PlaceAssignment(w http.ResponseWriter, r *http.Request)
	RemoveAssignment(w http.ResponseWriter, r *http.Request)
	ToggleLock(w http.ResponseWriter, r *http.Request)
	MoveAssignment(w http.ResponseWriter, r *http.Request)

	TimeSlots(w http.ResponseWriter, r *http.Request)
}

type RotaHandlerImpl struct {
	scheduleService schedule.Service
}

func NewRotaHandler(scheduleService schedule.Service) RotaHandler {
	return &RotaHandlerImpl{scheduleService: scheduleService}
}

// GetWeek implements RotaHandler.
func (h *RotaHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	week, err := h.scheduleService.GetWeek(r.Context(), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, week)
}

// AutoSchedule implements RotaHandler.
func (h *RotaHandlerImpl) AutoSchedule(w http.ResponseWriter, r *http.Request) {
	week, err := h.scheduleService.AutoSchedule(r.Context(), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Week scheduled successfully", week)
}

// ClearWeek implements RotaHandler.
func (h *RotaHandlerImpl) ClearWeek(w http.ResponseWriter, r *http.Request) {
	week, err := h.scheduleService.ClearWeek(r.Context(), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Unlocked assignments cleared", week)
}

// Validation implements RotaHandler.
func (h *RotaHandlerImpl) Validation(w http.ResponseWriter, r *http.Request) {
	report, err := h.scheduleService.Validation(r.Context(), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// WeeklyHours implements RotaHandler.
func (h *RotaHandlerImpl) WeeklyHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.scheduleService.WeeklyHours(r.Context(), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, hours)
}

// PayCycleHours implements RotaHandler. The cycle is addressed by its start
// date, e.g. /hours/pay-cycle/2025-03-25.
func (h *RotaHandlerImpl) PayCycleHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.scheduleService.PayCycleHours(r.Context(), chi.URLParam(r, "start"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, hours)
}

// PlaceAssignment implements RotaHandler.
func (h *RotaHandlerImpl) PlaceAssignment(w http.ResponseWriter, r *http.Request) {
	var req schedule.PlaceAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PlaceAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WeekStart = chi.URLParam(r, "week")

	week, err := h.scheduleService.PlaceAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment placed successfully", week)
}

// RemoveAssignment implements RotaHandler.
func (h *RotaHandlerImpl) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	var req schedule.RemoveAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RemoveAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WeekStart = chi.URLParam(r, "week")

	week, err := h.scheduleService.RemoveAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment removed successfully", week)
}

// ToggleLock implements RotaHandler.
func (h *RotaHandlerImpl) ToggleLock(w http.ResponseWriter, r *http.Request) {
	var req schedule.ToggleLockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ToggleLock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WeekStart = chi.URLParam(r, "week")

	week, err := h.scheduleService.ToggleLock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment lock toggled", week)
}

// MoveAssignment implements RotaHandler.
func (h *RotaHandlerImpl) MoveAssignment(w http.ResponseWriter, r *http.Request) {
	var req schedule.MoveAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MoveAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WeekStart = chi.URLParam(r, "week")

	week, err := h.scheduleService.MoveAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment moved successfully", week)
}

// TimeSlots implements RotaHandler. Day, branch and staff arrive as query
// parameters since this is a read against a hypothetical placement.
func (h *RotaHandlerImpl) TimeSlots(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	branchID := r.URL.Query().Get("branch_id")
	staffID := r.URL.Query().Get("staff_id")
	if day == "" || branchID == "" || staffID == "" {
		response.BadRequest(w, "day, branch_id and staff_id query parameters are required", nil)
		return
	}

	slots, err := h.scheduleService.TimeSlots(r.Context(), chi.URLParam(r, "week"), day, branchID, staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, slots)
}
