package service

import (
	"context"

	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/report"
)

// ReportService выполняет агрегирующие запросы под блокировкой чтения
type ReportService interface {
	EmployeesByDepartment(ctx context.Context) []report.DepartmentGroup
	TotalSalesPerEmployee(ctx context.Context) []report.EmployeeTotal
	TopSalespersonPerDepartment(ctx context.Context) []report.TopSeller
	EmployeesWithoutSales(ctx context.Context) []report.EmployeeTotal
	DepartmentsByHeadcount(ctx context.Context) []report.DepartmentHeadcount
	TopSales(ctx context.Context, n int) []report.SaleLine
	SalesLeaderboard(ctx context.Context) report.Leaderboard
	SearchEmployees(ctx context.Context, criteria report.SearchCriteria) []report.EmployeeTotal
	CompanySummary(ctx context.Context) []report.CompanyTotals
}

type reportService struct {
	store *GraphStore
}

// NewReportService создаёт новый экземпляр сервиса
func NewReportService(store *GraphStore) ReportService {
	return &reportService{store: store}
}

// query выполняет запрос над графом под блокировкой чтения
func query[T any](s *reportService, fn func(g *graph.Graph) T) T {
	var result T
	s.store.Read(func(g *graph.Graph) {
		result = fn(g)
	})
	return result
}

func (s *reportService) EmployeesByDepartment(ctx context.Context) []report.DepartmentGroup {
	return query(s, report.EmployeesByDepartment)
}

func (s *reportService) TotalSalesPerEmployee(ctx context.Context) []report.EmployeeTotal {
	return query(s, report.TotalSalesPerEmployee)
}

func (s *reportService) TopSalespersonPerDepartment(ctx context.Context) []report.TopSeller {
	return query(s, report.TopSalespersonPerDepartment)
}

func (s *reportService) EmployeesWithoutSales(ctx context.Context) []report.EmployeeTotal {
	return query(s, report.EmployeesWithoutSales)
}

func (s *reportService) DepartmentsByHeadcount(ctx context.Context) []report.DepartmentHeadcount {
	return query(s, report.DepartmentsByHeadcount)
}

func (s *reportService) TopSales(ctx context.Context, n int) []report.SaleLine {
	return query(s, func(g *graph.Graph) []report.SaleLine {
		return report.TopSales(g, n)
	})
}

func (s *reportService) SalesLeaderboard(ctx context.Context) report.Leaderboard {
	return query(s, report.SalesLeaderboard)
}

func (s *reportService) SearchEmployees(ctx context.Context, criteria report.SearchCriteria) []report.EmployeeTotal {
	return query(s, func(g *graph.Graph) []report.EmployeeTotal {
		return report.SearchEmployees(g, criteria)
	})
}

func (s *reportService) CompanySummary(ctx context.Context) []report.CompanyTotals {
	return query(s, report.CompanySummary)
}
