package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicops/rota-backend-go/internal/domain/leave"
	"github.com/clinicops/rota-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	GetAll(w http.ResponseWriter, r *http.Request)
	GetForStaff(w http.ResponseWriter, r *http.Request)
	SetForStaff(w http.ResponseWriter, r *http.Request)

	GetShiftRequests(w http.ResponseWriter, r *http.Request)
	SetShiftRequests(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// GetAll implements LeaveHandler.
func (h *LeaveHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	avail, err := h.leaveService.GetLeave(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, avail)
}

// GetForStaff implements LeaveHandler.
func (h *LeaveHandlerImpl) GetForStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	dates, err := h.leaveService.GetLeaveForStaff(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dates)
}

// SetForStaff implements LeaveHandler.
func (h *LeaveHandlerImpl) SetForStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req leave.SetLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetForStaff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = staffID

	dates, err := h.leaveService.SetLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave dates updated successfully", dates)
}

// GetShiftRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetShiftRequests(w http.ResponseWriter, r *http.Request) {
	week := chi.URLParam(r, "week")

	requests, err := h.leaveService.GetShiftRequests(r.Context(), week)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// SetShiftRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) SetShiftRequests(w http.ResponseWriter, r *http.Request) {
	week := chi.URLParam(r, "week")
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req leave.SetShiftRequestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetShiftRequests decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WeekStart = week
	req.StaffID = staffID

	if err := h.leaveService.SetShiftRequests(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift requests updated successfully", nil)
}
