package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline/workforce-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	CreateSchedule(w http.ResponseWriter, r *http.Request)
	ListSchedules(w http.ResponseWriter, r *http.Request)
	PublishSchedule(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)

	AssignShift(w http.ResponseWriter, r *http.Request)
	UnassignShift(w http.ResponseWriter, r *http.Request)

	ListShiftTypes(w http.ResponseWriter, r *http.Request)
	CreateShiftType(w http.ResponseWriter, r *http.Request)

	MyRoster(w http.ResponseWriter, r *http.Request)
	MyAvailability(w http.ResponseWriter, r *http.Request)
	SetMyAvailability(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// CreateSchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSchedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.scheduleService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule created successfully", created)
}

// ListSchedules implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleService.ListSchedules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedules)
}

// PublishSchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) PublishSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID", nil)
		return
	}

	if err := h.scheduleService.PublishSchedule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule published successfully", nil)
}

// ListAssignments implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID", nil)
		return
	}

	assignments, err := h.scheduleService.ListAssignments(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}

// AssignShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignment, err := h.scheduleService.AssignShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned successfully", map[string]int64{"assignment_id": assignment.ID})
}

// UnassignShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UnassignShift(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid assignment ID", nil)
		return
	}

	if err := h.scheduleService.UnassignShift(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift unassigned successfully", nil)
}

// ListShiftTypes implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListShiftTypes(w http.ResponseWriter, r *http.Request) {
	shiftTypes, err := h.scheduleService.ListShiftTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shiftTypes)
}

// CreateShiftType implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateShiftType(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateShiftTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShiftType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.scheduleService.CreateShiftType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift type created successfully", created)
}

// MyRoster implements ScheduleHandler.
func (h *ScheduleHandlerImpl) MyRoster(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	roster, err := h.scheduleService.EmployeeRoster(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster)
}

// MyAvailability implements ScheduleHandler.
func (h *ScheduleHandlerImpl) MyAvailability(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.scheduleService.GetAvailability(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// SetMyAvailability implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SetMyAvailability(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req schedule.SetAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetAvailability decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.scheduleService.SetAvailability(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, saved)
}
