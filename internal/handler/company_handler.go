package handler

import (
	"log/slog"
	"net/http"

	"github.com/company-sales-api/internal/dto"
	"github.com/company-sales-api/internal/service"
)

type CompanyHandler struct {
	base
	companyService service.CompanyService
	deptService    service.DepartmentService
}

func NewCompanyHandler(
	companyService service.CompanyService,
	deptService service.DepartmentService,
	logger *slog.Logger,
) *CompanyHandler {
	return &CompanyHandler{
		base:           newBase(logger),
		companyService: companyService,
		deptService:    deptService,
	}
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCompanyRequest
	if !h.decode(w, r, &req) {
		return
	}

	company, err := h.companyService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.CompanyResponse{ID: company.ID, Name: company.Name})
}

func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r.PathValue("id"), "company")
	if !ok {
		return
	}

	details, err := h.companyService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := dto.CompanyResponse{ID: details.Company.ID, Name: details.Company.Name}
	for _, d := range details.Departments {
		resp.Departments = append(resp.Departments, toDepartmentDetailsResponse(d))
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *CompanyHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.parseID(w, r.PathValue("id"), "company")
	if !ok {
		return
	}

	var req dto.CreateDepartmentRequest
	if !h.decode(w, r, &req) {
		return
	}

	dept, err := h.deptService.Create(r.Context(), companyID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toDepartmentResponse(dept))
}

func toDepartmentDetailsResponse(d service.DepartmentDetails) dto.DepartmentResponse {
	resp := toDepartmentResponse(&d.Department)
	if len(d.Employees) > 0 {
		resp.Employees = make([]dto.EmployeeResponse, len(d.Employees))
		for i, e := range d.Employees {
			resp.Employees[i] = toEmployeeResponse(&e.Employee, e.TotalSales)
		}
	}
	return resp
}
