package handler

import (
	"log/slog"
	"net/http"

	"github.com/company-sales-api/internal/dto"
	"github.com/company-sales-api/internal/service"
)

type EmployeeHandler struct {
	base
	empService  service.EmployeeService
	saleService service.SaleService
}

func NewEmployeeHandler(
	empService service.EmployeeService,
	saleService service.SaleService,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		base:        newBase(logger),
		empService:  empService,
		saleService: saleService,
	}
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r.PathValue("id"), "employee")
	if !ok {
		return
	}

	details, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(&details.Employee, details.TotalSales))
}

// FindByName ищет сотрудника по параметру name без учёта регистра
func (h *EmployeeHandler) FindByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.respondError(w, http.StatusBadRequest, "validation error", "name query parameter is required")
		return
	}

	details, err := h.empService.FindByName(r.Context(), name)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(&details.Employee, details.TotalSales))
}

func (h *EmployeeHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r.PathValue("id"), "employee")
	if !ok {
		return
	}

	var req dto.MoveEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	details, err := h.empService.Move(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(&details.Employee, details.TotalSales))
}

func (h *EmployeeHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.parseID(w, r.PathValue("id"), "employee")
	if !ok {
		return
	}

	var req dto.CreateSaleRequest
	if !h.decode(w, r, &req) {
		return
	}

	sale, err := h.saleService.Create(r.Context(), empID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toSaleResponse(sale))
}

func (h *EmployeeHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r.PathValue("id"), "sale")
	if !ok {
		return
	}

	if err := h.saleService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
