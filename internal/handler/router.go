package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/company-sales-api/internal/metrics"
	"github.com/company-sales-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux            *http.ServeMux
	logger         *slog.Logger
	companyHandler *CompanyHandler
	deptHandler    *DepartmentHandler
	empHandler     *EmployeeHandler
	reportHandler  *ReportHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	companyHandler *CompanyHandler,
	deptHandler *DepartmentHandler,
	empHandler *EmployeeHandler,
	reportHandler *ReportHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		logger:         logger,
		companyHandler: companyHandler,
		deptHandler:    deptHandler,
		empHandler:     empHandler,
		reportHandler:  reportHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики
	r.mux.HandleFunc("/companies/", r.companiesRouter)
	r.mux.HandleFunc("/departments/", r.departmentsRouter)
	r.mux.HandleFunc("/employees/", r.employeesRouter)
	r.mux.HandleFunc("/sales/", r.salesRouter)
	r.mux.HandleFunc("/reports/", r.reportsRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		middleware.SetRoute(req, "/health")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	metricsHandler := metrics.Handler()
	r.mux.HandleFunc("/metrics", func(w http.ResponseWriter, req *http.Request) {
		middleware.SetRoute(req, "/metrics")
		metricsHandler.ServeHTTP(w, req)
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

// companiesRouter обрабатывает все запросы к /companies/
func (r *Router) companiesRouter(w http.ResponseWriter, req *http.Request) {
	parts := splitPath(req.URL.Path, "/companies")

	switch {
	// POST /companies/ - создание компании
	case len(parts) == 0:
		middleware.SetRoute(req, "/companies")
		if req.Method == http.MethodPost {
			r.companyHandler.Create(w, req)
			return
		}
		methodNotAllowed(w)

	case len(parts) == 1:
		middleware.SetRoute(req, "/companies/:id")
		req.SetPathValue("id", parts[0])
		if req.Method == http.MethodGet {
			r.companyHandler.GetByID(w, req)
			return
		}
		methodNotAllowed(w)

	case len(parts) == 2 && parts[1] == "departments":
		middleware.SetRoute(req, "/companies/:id/departments")
		req.SetPathValue("id", parts[0])
		if req.Method == http.MethodPost {
			r.companyHandler.CreateDepartment(w, req)
			return
		}
		methodNotAllowed(w)

	default:
		notFound(w)
	}
}

// departmentsRouter обрабатывает все запросы к /departments/
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	// Разбираем путь: {id}, {id}/employees или {id}/employees/{employeeID}
	parts := splitPath(req.URL.Path, "/departments")

	switch {
	case len(parts) == 1:
		middleware.SetRoute(req, "/departments/:id")
		req.SetPathValue("id", parts[0])
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.GetByID(w, req)
		case http.MethodDelete:
			r.deptHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 2 && parts[1] == "employees":
		middleware.SetRoute(req, "/departments/:id/employees")
		req.SetPathValue("id", parts[0])
		switch req.Method {
		case http.MethodPost:
			r.deptHandler.CreateEmployee(w, req)
		case http.MethodDelete:
			r.deptHandler.RemoveAllEmployees(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 3 && parts[1] == "employees":
		middleware.SetRoute(req, "/departments/:id/employees/:id")
		req.SetPathValue("id", parts[0])
		req.SetPathValue("employeeID", parts[2])
		if req.Method == http.MethodDelete {
			r.deptHandler.RemoveEmployee(w, req)
			return
		}
		methodNotAllowed(w)

	default:
		notFound(w)
	}
}

// employeesRouter обрабатывает все запросы к /employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	parts := splitPath(req.URL.Path, "/employees")

	switch {
	// GET /employees/?name= - поиск по имени
	case len(parts) == 0:
		middleware.SetRoute(req, "/employees")
		if req.Method == http.MethodGet {
			r.empHandler.FindByName(w, req)
			return
		}
		methodNotAllowed(w)

	case len(parts) == 1:
		middleware.SetRoute(req, "/employees/:id")
		req.SetPathValue("id", parts[0])
		switch req.Method {
		case http.MethodGet:
			r.empHandler.GetByID(w, req)
		case http.MethodPatch:
			r.empHandler.Move(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 2 && parts[1] == "sales":
		middleware.SetRoute(req, "/employees/:id/sales")
		req.SetPathValue("id", parts[0])
		if req.Method == http.MethodPost {
			r.empHandler.CreateSale(w, req)
			return
		}
		methodNotAllowed(w)

	default:
		notFound(w)
	}
}

// salesRouter обрабатывает все запросы к /sales/
func (r *Router) salesRouter(w http.ResponseWriter, req *http.Request) {
	parts := splitPath(req.URL.Path, "/sales")
	if len(parts) != 1 {
		notFound(w)
		return
	}

	middleware.SetRoute(req, "/sales/:id")
	req.SetPathValue("id", parts[0])
	if req.Method == http.MethodDelete {
		r.empHandler.DeleteSale(w, req)
		return
	}
	methodNotAllowed(w)
}

// reportsRouter обрабатывает все запросы к /reports/
func (r *Router) reportsRouter(w http.ResponseWriter, req *http.Request) {
	parts := splitPath(req.URL.Path, "/reports")
	if len(parts) != 1 {
		notFound(w)
		return
	}
	if !r.reportHandler.Has(parts[0]) {
		notFound(w)
		return
	}

	middleware.SetRoute(req, "/reports/"+parts[0])
	if req.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	r.reportHandler.Serve(w, req, parts[0])
}

// splitPath отрезает префикс и возвращает непустые сегменты пути
func splitPath(path, prefix string) []string {
	path = strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}
