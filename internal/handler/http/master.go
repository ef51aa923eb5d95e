package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftline/workforce-backend-go/internal/domain/master"
	"github.com/shiftline/workforce-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	ListWorkLocations(w http.ResponseWriter, r *http.Request)
	CreateWorkLocation(w http.ResponseWriter, r *http.Request)

	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)

	ListJobTitles(w http.ResponseWriter, r *http.Request)
	CreateJobTitle(w http.ResponseWriter, r *http.Request)

	ListEmploymentTypes(w http.ResponseWriter, r *http.Request)
	CreateEmploymentType(w http.ResponseWriter, r *http.Request)

	ListSkills(w http.ResponseWriter, r *http.Request)
	CreateSkill(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

func (h *masterHandlerImpl) ListWorkLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.masterService.ListWorkLocations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, locations)
}

func (h *masterHandlerImpl) CreateWorkLocation(w http.ResponseWriter, r *http.Request) {
	var req master.CreateWorkLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateWorkLocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Work location created successfully", created)
}

func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req master.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", created)
}

func (h *masterHandlerImpl) ListJobTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.masterService.ListJobTitles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, titles)
}

func (h *masterHandlerImpl) CreateJobTitle(w http.ResponseWriter, r *http.Request) {
	var req master.CreateNamedEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateJobTitle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job title created successfully", created)
}

func (h *masterHandlerImpl) ListEmploymentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.masterService.ListEmploymentTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

func (h *masterHandlerImpl) CreateEmploymentType(w http.ResponseWriter, r *http.Request) {
	var req master.CreateNamedEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateEmploymentType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employment type created successfully", created)
}

func (h *masterHandlerImpl) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.masterService.ListSkills(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, skills)
}

func (h *masterHandlerImpl) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req master.CreateNamedEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateSkill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Skill created successfully", created)
}
