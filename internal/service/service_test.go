package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/company-sales-api/internal/config"
	"github.com/company-sales-api/internal/domain"
	"github.com/company-sales-api/internal/dto"
	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/report"
	"github.com/company-sales-api/internal/repository"
	"github.com/company-sales-api/internal/service"
	"github.com/company-sales-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var errStorage = errors.New("storage unavailable")

type env struct {
	db       *gorm.DB
	store    *service.GraphStore
	company  service.CompanyService
	dept     service.DepartmentService
	employee service.EmployeeService
	sale     service.SaleService
	report   service.ReportService
}

func setup(t *testing.T) *env {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
	}
	db, err := storage.Open(cfg, gormlogger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, storage.Migrate(db, cfg.Driver))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	g, err := service.LoadGraph(context.Background(), repository.NewSnapshotRepository(db), true, logger)
	require.NoError(t, err)

	store := service.NewGraphStore(g)
	return &env{
		db:       db,
		store:    store,
		company:  service.NewCompanyService(store, repository.NewCompanyRepository(db)),
		dept:     service.NewDepartmentService(store, repository.NewDepartmentRepository(db)),
		employee: service.NewEmployeeService(store, repository.NewEmployeeRepository(db)),
		sale:     service.NewSaleService(store, repository.NewSaleRepository(db)),
		report:   service.NewReportService(store),
	}
}

// reload восстанавливает граф из БД, чтобы сверить его с графом в памяти
func (e *env) reload(t *testing.T) *graph.Graph {
	t.Helper()
	snapshot, err := repository.NewSnapshotRepository(e.db).Load(context.Background())
	require.NoError(t, err)
	g, err := graph.FromSnapshot(snapshot)
	require.NoError(t, err)
	return g
}

func (e *env) stats() graph.Stats {
	var s graph.Stats
	e.store.Read(func(g *graph.Graph) { s = g.Stats() })
	return s
}

func amount(v float64) *float64 { return &v }

type failingCompanyRepo struct{ repository.CompanyRepository }

func (failingCompanyRepo) Create(context.Context, *domain.Company) error { return errStorage }

type failingEmployeeRepo struct{ repository.EmployeeRepository }

func (failingEmployeeRepo) Create(context.Context, *domain.Employee) error { return errStorage }

func (failingEmployeeRepo) UpdateDepartment(context.Context, int64, int64) error { return errStorage }

type failingSaleRepo struct{ repository.SaleRepository }

func (failingSaleRepo) Create(context.Context, *domain.Sale) error { return errStorage }

func TestLoadGraph_SeedsOnce(t *testing.T) {
	e := setup(t)
	assert.Equal(t, graph.Stats{Companies: 1, Departments: 3, Employees: 5, Sales: 5}, e.stats())

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	g, err := service.LoadGraph(context.Background(), repository.NewSnapshotRepository(e.db), true, logger)
	require.NoError(t, err)
	assert.Equal(t, e.stats(), g.Stats(), "second start restores instead of seeding again")
}

func TestCompanyService_CreateAndGet(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	c, err := e.company.Create(ctx, &dto.CreateCompanyRequest{Name: "Globex"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ID)

	details, err := e.company.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, details.Departments, 3)
	assert.Equal(t, "Sales", details.Departments[0].Department.Name)
	assert.Equal(t, 32000.0, details.Departments[0].Employees[0].TotalSales)

	_, err = e.company.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	assert.Len(t, e.reload(t).Companies(), 2)
}

func TestCompanyService_RollbackOnStorageError(t *testing.T) {
	e := setup(t)
	svc := service.NewCompanyService(e.store, failingCompanyRepo{})

	_, err := svc.Create(context.Background(), &dto.CreateCompanyRequest{Name: "Globex"})
	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, 1, e.stats().Companies)
}

func TestDepartmentService_CreateDanglingCompany(t *testing.T) {
	e := setup(t)

	_, err := e.dept.Create(context.Background(), 42, &dto.CreateDepartmentRequest{Name: "Ops"})
	assert.ErrorIs(t, err, domain.ErrDanglingOwner)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestDepartmentService_DeleteCascade(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	require.NoError(t, e.dept.Delete(ctx, 1, &dto.DeleteDepartmentQuery{Mode: "cascade"}))

	want := graph.Stats{Companies: 1, Departments: 2, Employees: 3, Sales: 0}
	assert.Equal(t, want, e.stats())
	assert.Equal(t, want, e.reload(t).Stats())

	_, err := e.dept.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentService_DeleteReassign(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	target := int64(3)

	require.NoError(t, e.dept.Delete(ctx, 1, &dto.DeleteDepartmentQuery{Mode: "reassign", ReassignToDepartmentID: &target}))

	hr, err := e.dept.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, hr.Employees, 3)
	assert.Equal(t, 5, e.stats().Sales)
	assert.Equal(t, e.stats(), e.reload(t).Stats())
}

func TestDepartmentService_DeleteErrors(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	self, missing := int64(1), int64(99)

	tests := []struct {
		name  string
		id    int64
		query dto.DeleteDepartmentQuery
		want  error
	}{
		{"unknown department", 99, dto.DeleteDepartmentQuery{Mode: "cascade"}, domain.ErrDepartmentNotFound},
		{"bad mode", 1, dto.DeleteDepartmentQuery{Mode: "archive"}, domain.ErrInvalidDeleteMode},
		{"no target", 1, dto.DeleteDepartmentQuery{Mode: "reassign"}, domain.ErrReassignTargetRequired},
		{"self target", 1, dto.DeleteDepartmentQuery{Mode: "reassign", ReassignToDepartmentID: &self}, domain.ErrCannotReassignToSelf},
		{"missing target", 1, dto.DeleteDepartmentQuery{Mode: "reassign", ReassignToDepartmentID: &missing}, domain.ErrReassignTargetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, e.dept.Delete(ctx, tt.id, &tt.query), tt.want)
		})
	}
	assert.Equal(t, 3, e.stats().Departments)
}

func TestEmployeeService_CreateFindMove(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	emp, err := e.employee.Create(ctx, 2, &dto.CreateEmployeeRequest{Name: " Frank Moss ", Role: "SRE"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), emp.ID)
	assert.Equal(t, "Frank Moss", emp.Name)

	found, err := e.employee.FindByName(ctx, "frank moss")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, found.Employee.ID)

	moved, err := e.employee.Move(ctx, 1, &dto.MoveEmployeeRequest{DepartmentID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), moved.Employee.DepartmentID)
	assert.Equal(t, 32000.0, moved.TotalSales, "sales follow the employee")

	reloaded, err := e.reload(t).FindEmployeeByID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), reloaded.DepartmentID)

	_, err = e.employee.Move(ctx, 1, &dto.MoveEmployeeRequest{DepartmentID: 99})
	assert.ErrorIs(t, err, domain.ErrDanglingOwner)

	_, err = e.employee.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_DetailsCarryTotals(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	eve, err := e.employee.FindByName(ctx, "Eve Summers")
	require.NoError(t, err)
	assert.Equal(t, 17000.0, eve.TotalSales)

	david, err := e.employee.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "David Chen", david.Employee.Name)
	assert.Zero(t, david.TotalSales)
}

func TestEmployeeService_RollbackOnStorageError(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	svc := service.NewEmployeeService(e.store, failingEmployeeRepo{})

	_, err := svc.Create(ctx, 2, &dto.CreateEmployeeRequest{Name: "Frank", Role: "SRE"})
	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, 5, e.stats().Employees)

	_, err = svc.Move(ctx, 1, &dto.MoveEmployeeRequest{DepartmentID: 3})
	assert.ErrorIs(t, err, errStorage)
	alice, err := e.employee.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.Employee.DepartmentID)
}

func TestEmployeeService_Remove(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, e.employee.Remove(ctx, 2, 1), domain.ErrEmployeeNotFound, "employee belongs to another department")
	assert.ErrorIs(t, e.employee.Remove(ctx, 99, 1), domain.ErrDepartmentNotFound)

	require.NoError(t, e.employee.Remove(ctx, 1, 1))
	assert.Equal(t, graph.Stats{Companies: 1, Departments: 3, Employees: 4, Sales: 2}, e.stats())
	assert.Equal(t, e.stats(), e.reload(t).Stats())

	removed, err := e.employee.RemoveAll(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	removed, err = e.employee.RemoveAll(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSaleService(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	sale, err := e.sale.Create(ctx, 2, &dto.CreateSaleRequest{Amount: amount(1200.5), Date: "2025-05-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), sale.ID)
	bob, err := e.employee.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1200.5, bob.TotalSales)

	_, err = e.sale.Create(ctx, 2, &dto.CreateSaleRequest{Amount: amount(-1), Date: "2025-05-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = e.sale.Create(ctx, 99, &dto.CreateSaleRequest{Amount: amount(1), Date: "2025-05-01"})
	assert.ErrorIs(t, err, domain.ErrDanglingOwner)

	require.NoError(t, e.sale.Delete(ctx, sale.ID))
	assert.ErrorIs(t, e.sale.Delete(ctx, sale.ID), domain.ErrSaleNotFound)
	assert.Equal(t, 5, e.reload(t).Stats().Sales)
}

func TestSaleService_RollbackOnStorageError(t *testing.T) {
	e := setup(t)
	svc := service.NewSaleService(e.store, failingSaleRepo{})

	_, err := svc.Create(context.Background(), 2, &dto.CreateSaleRequest{Amount: amount(10), Date: "2025-05-01"})
	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, 5, e.stats().Sales)
}

func TestReportService(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	top := e.report.TopSales(ctx, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []float64{15000, 12000, 9500}, []float64{top[0].Amount, top[1].Amount, top[2].Amount})

	board := e.report.SalesLeaderboard(ctx)
	assert.Equal(t, 49000.0, board.Total)

	found := e.report.SearchEmployees(ctx, report.SearchCriteria{Departments: []string{"sales"}, MinTotal: 20000})
	require.Len(t, found, 1)
	assert.Equal(t, "Alice Martin", found[0].Name)

	assert.Len(t, e.report.EmployeesWithoutSales(ctx), 3)
	assert.Len(t, e.report.CompanySummary(ctx), 1)
}
