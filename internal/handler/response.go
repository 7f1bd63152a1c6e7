package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/company-sales-api/internal/domain"
	"github.com/company-sales-api/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// base содержит общие для всех хендлеров валидатор, логгер и ответы
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	return base{
		validator: newValidator(),
		logger:    logger,
	}
}

// newValidator добавляет к стандартным правилам notblank: имя из одних пробелов не допускается
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// decode читает JSON тело запроса и валидирует его; при ошибке ответ уже отправлен
func (h *base) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	return h.validate(w, req)
}

func (h *base) validate(w http.ResponseWriter, v any) bool {
	if err := h.validator.Struct(v); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}
	return true
}

func (h *base) parseID(w http.ResponseWriter, raw, what string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		msg := "id must be a positive integer"
		if err != nil {
			msg = err.Error()
		}
		h.respondError(w, http.StatusBadRequest, "invalid "+what+" id", msg)
		return 0, false
	}
	return id, true
}

func (h *base) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	// DanglingOwner оборачивает и NotFound, поэтому проверяется первым
	case errors.Is(err, domain.ErrDanglingOwner):
		h.respondError(w, http.StatusConflict, "owner does not exist", err.Error())
	case errors.Is(err, domain.ErrCompanyNotFound):
		h.respondError(w, http.StatusNotFound, "company not found", "")
	case errors.Is(err, domain.ErrDepartmentNotFound):
		h.respondError(w, http.StatusNotFound, "department not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrSaleNotFound):
		h.respondError(w, http.StatusNotFound, "sale not found", "")
	case errors.Is(err, domain.ErrInvalidAmount):
		h.respondError(w, http.StatusUnprocessableEntity, "invalid sale amount", err.Error())
	case errors.Is(err, domain.ErrInvalidDeleteMode):
		h.respondError(w, http.StatusBadRequest, "invalid delete mode, use 'cascade' or 'reassign'", "")
	case errors.Is(err, domain.ErrReassignTargetRequired):
		h.respondError(w, http.StatusBadRequest, "reassign_to_department_id is required when mode is reassign", "")
	case errors.Is(err, domain.ErrReassignTargetNotFound):
		h.respondError(w, http.StatusNotFound, "target department for reassignment not found", "")
	case errors.Is(err, domain.ErrCannotReassignToSelf):
		h.respondError(w, http.StatusBadRequest, "cannot reassign to the same department being deleted", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *base) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dept.ID,
		CompanyID: dept.CompanyID,
		Name:      dept.Name,
	}
}

func toEmployeeResponse(emp *domain.Employee, total float64) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           emp.ID,
		DepartmentID: emp.DepartmentID,
		Name:         emp.Name,
		Role:         emp.Role,
		TotalSales:   total,
	}
}

func toSaleResponse(sale *domain.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:         sale.ID,
		EmployeeID: sale.EmployeeID,
		Amount:     sale.Amount,
		Date:       sale.Date.Format(domain.DateLayout),
	}
}
