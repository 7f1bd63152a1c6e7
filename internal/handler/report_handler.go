package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/company-sales-api/internal/dto"
	"github.com/company-sales-api/internal/report"
	"github.com/company-sales-api/internal/service"
)

// defaultTopSales - размер отчёта top-sales без параметра n
const defaultTopSales = 3

type ReportHandler struct {
	base
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		base:          newBase(logger),
		reportService: reportService,
	}
}

// reportNames - известные отчёты; другие имена в метки метрик не попадают
var reportNames = []string{
	"employees-by-department",
	"sales-per-employee",
	"top-salespeople",
	"employees-without-sales",
	"departments-by-headcount",
	"top-sales",
	"leaderboard",
	"search",
	"company-summary",
}

// Has сообщает, есть ли отчёт с таким именем
func (h *ReportHandler) Has(name string) bool {
	return slices.Contains(reportNames, name)
}

// Serve отдаёт отчёт по имени
func (h *ReportHandler) Serve(w http.ResponseWriter, r *http.Request, name string) {
	ctx := r.Context()

	switch name {
	case "employees-by-department":
		h.respondJSON(w, http.StatusOK, h.reportService.EmployeesByDepartment(ctx))
	case "sales-per-employee":
		h.respondJSON(w, http.StatusOK, h.reportService.TotalSalesPerEmployee(ctx))
	case "top-salespeople":
		h.respondJSON(w, http.StatusOK, h.reportService.TopSalespersonPerDepartment(ctx))
	case "employees-without-sales":
		h.respondJSON(w, http.StatusOK, h.reportService.EmployeesWithoutSales(ctx))
	case "departments-by-headcount":
		h.respondJSON(w, http.StatusOK, h.reportService.DepartmentsByHeadcount(ctx))
	case "top-sales":
		h.topSales(w, r)
	case "leaderboard":
		h.respondJSON(w, http.StatusOK, h.reportService.SalesLeaderboard(ctx))
	case "search":
		h.search(w, r)
	case "company-summary":
		h.respondJSON(w, http.StatusOK, h.reportService.CompanySummary(ctx))
	default:
		notFound(w)
	}
}

func (h *ReportHandler) topSales(w http.ResponseWriter, r *http.Request) {
	query := dto.TopSalesQuery{N: defaultTopSales}
	if raw := r.URL.Query().Get("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid n", err.Error())
			return
		}
		query.N = n
	}
	if !h.validate(w, &query) {
		return
	}

	h.respondJSON(w, http.StatusOK, h.reportService.TopSales(r.Context(), query.N))
}

func (h *ReportHandler) search(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	var query dto.SearchQuery
	if raw := values.Get("departments"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			query.Departments = append(query.Departments, strings.TrimSpace(name))
		}
	}
	if raw := values.Get("min_total"); raw != "" {
		minTotal, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid min_total", err.Error())
			return
		}
		query.MinTotal = minTotal
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid limit", err.Error())
			return
		}
		query.Limit = limit
	}
	if !h.validate(w, &query) {
		return
	}

	h.respondJSON(w, http.StatusOK, h.reportService.SearchEmployees(r.Context(), report.SearchCriteria{
		Departments: query.Departments,
		MinTotal:    query.MinTotal,
		Limit:       query.Limit,
	}))
}
