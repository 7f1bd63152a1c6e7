package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/company-sales-api/internal/dto"
	"github.com/company-sales-api/internal/service"
)

type DepartmentHandler struct {
	base
	deptService service.DepartmentService
	empService  service.EmployeeService
}

func NewDepartmentHandler(
	deptService service.DepartmentService,
	empService service.EmployeeService,
	logger *slog.Logger,
) *DepartmentHandler {
	return &DepartmentHandler{
		base:        newBase(logger),
		deptService: deptService,
		empService:  empService,
	}
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r.PathValue("id"), "department")
	if !ok {
		return
	}

	details, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toDepartmentDetailsResponse(*details))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r.PathValue("id"), "department")
	if !ok {
		return
	}

	query := h.parseDeleteQuery(r)
	if !h.validate(w, &query) {
		return
	}

	if err := h.deptService.Delete(r.Context(), id, &query); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DepartmentHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	deptID, ok := h.parseID(w, r.PathValue("id"), "department")
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), deptID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toEmployeeResponse(emp, 0))
}

func (h *DepartmentHandler) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	deptID, ok := h.parseID(w, r.PathValue("id"), "department")
	if !ok {
		return
	}
	empID, ok := h.parseID(w, r.PathValue("employeeID"), "employee")
	if !ok {
		return
	}

	if err := h.empService.Remove(r.Context(), deptID, empID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DepartmentHandler) RemoveAllEmployees(w http.ResponseWriter, r *http.Request) {
	deptID, ok := h.parseID(w, r.PathValue("id"), "department")
	if !ok {
		return
	}

	removed, err := h.empService.RemoveAll(r.Context(), deptID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.RemovedResponse{Removed: removed})
}

func (h *DepartmentHandler) parseDeleteQuery(r *http.Request) dto.DeleteDepartmentQuery {
	query := dto.DeleteDepartmentQuery{
		Mode: r.URL.Query().Get("mode"),
	}

	if reassignStr := r.URL.Query().Get("reassign_to_department_id"); reassignStr != "" {
		if reassignID, err := strconv.ParseInt(reassignStr, 10, 64); err == nil {
			query.ReassignToDepartmentID = &reassignID
		}
	}

	return query
}
