package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/company-sales-api/internal/config"
	"github.com/company-sales-api/internal/domain"
	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/repository"
	"github.com/company-sales-api/internal/seed"
	"github.com/company-sales-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
	}
	db, err := storage.Open(cfg, gormlogger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, storage.Migrate(db, cfg.Driver))
	return db
}

func importSample(t *testing.T, db *gorm.DB) *graph.Graph {
	t.Helper()
	g, err := seed.NewGraph()
	require.NoError(t, err)
	require.NoError(t, repository.NewSnapshotRepository(db).Import(context.Background(), g.Snapshot()))
	return g
}

func TestSnapshot_ImportLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	snapshots := repository.NewSnapshotRepository(db)

	empty, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	g := importSample(t, db)

	loaded, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.IsEmpty())
	assert.Equal(t, g.Companies(), loaded.Companies)
	assert.Equal(t, g.Departments(), loaded.Departments)
	assert.Equal(t, g.Employees(), loaded.Employees)
	require.Len(t, loaded.Sales, len(g.Sales()))
	for i, s := range g.Sales() {
		assert.Equal(t, s.ID, loaded.Sales[i].ID)
		assert.Equal(t, s.EmployeeID, loaded.Sales[i].EmployeeID)
		assert.Equal(t, s.Amount, loaded.Sales[i].Amount)
		assert.True(t, s.Date.Equal(loaded.Sales[i].Date), "sale %d date %v != %v", s.ID, s.Date, loaded.Sales[i].Date)
	}

	restored, err := graph.FromSnapshot(loaded)
	require.NoError(t, err)
	assert.Equal(t, g.Stats(), restored.Stats())
}

// loadSnapshot читает сохранённое состояние тем же путём, что и сервер при старте
func loadSnapshot(t *testing.T, db *gorm.DB) graph.Snapshot {
	t.Helper()
	s, err := repository.NewSnapshotRepository(db).Load(context.Background())
	require.NoError(t, err)
	return s
}

func employeesIn(s graph.Snapshot, departmentID int64) []domain.Employee {
	var out []domain.Employee
	for _, e := range s.Employees {
		if e.DepartmentID == departmentID {
			out = append(out, e)
		}
	}
	return out
}

func salesOf(s graph.Snapshot, employeeID int64) []domain.Sale {
	var out []domain.Sale
	for _, sale := range s.Sales {
		if sale.EmployeeID == employeeID {
			out = append(out, sale)
		}
	}
	return out
}

func TestCompanyRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := repository.NewCompanyRepository(db)

	require.NoError(t, repo.Create(ctx, &domain.Company{ID: 7, Name: "Globex"}))
	assert.Error(t, repo.Create(ctx, &domain.Company{ID: 7, Name: "Duplicate"}))

	loaded := loadSnapshot(t, db)
	require.Len(t, loaded.Companies, 1)
	assert.Equal(t, domain.Company{ID: 7, Name: "Globex"}, loaded.Companies[0])
}

func TestEmployeeRepository_DeleteCascadesSales(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	g := importSample(t, db)
	employees := repository.NewEmployeeRepository(db)

	alice, err := g.FindEmployeeByName("Alice Martin")
	require.NoError(t, err)
	require.NotEmpty(t, salesOf(loadSnapshot(t, db), alice.ID))

	require.NoError(t, employees.Delete(ctx, alice.ID))

	loaded := loadSnapshot(t, db)
	for _, e := range loaded.Employees {
		assert.NotEqual(t, alice.ID, e.ID)
	}
	assert.Empty(t, salesOf(loaded, alice.ID))

	assert.ErrorIs(t, employees.Delete(ctx, alice.ID), domain.ErrEmployeeNotFound)
}

func TestEmployeeRepository_DeleteByDepartmentID(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	importSample(t, db)
	employees := repository.NewEmployeeRepository(db)

	require.NoError(t, employees.DeleteByDepartmentID(ctx, 1))

	loaded := loadSnapshot(t, db)
	assert.Empty(t, employeesIn(loaded, 1))
	assert.Empty(t, loaded.Sales, "all sample sales belong to the Sales department")
	assert.Len(t, loaded.Employees, 3)
}

func TestEmployeeRepository_UpdateDepartment(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	importSample(t, db)
	employees := repository.NewEmployeeRepository(db)

	require.NoError(t, employees.UpdateDepartment(ctx, 1, 3))
	assert.ErrorIs(t, employees.UpdateDepartment(ctx, 99, 3), domain.ErrEmployeeNotFound)

	inHR := employeesIn(loadSnapshot(t, db), 3)
	require.Len(t, inHR, 2)
	assert.Equal(t, "Alice Martin", inHR[0].Name)
	assert.Equal(t, int64(3), inHR[0].DepartmentID)
}

func TestDepartmentRepository_DeleteCascade(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	importSample(t, db)
	departments := repository.NewDepartmentRepository(db)

	require.NoError(t, departments.DeleteCascade(ctx, 1))

	loaded := loadSnapshot(t, db)
	assert.Len(t, loaded.Departments, 2)
	for _, d := range loaded.Departments {
		assert.NotEqual(t, int64(1), d.ID)
	}
	assert.Len(t, loaded.Employees, 3)
	assert.Empty(t, loaded.Sales)

	assert.ErrorIs(t, departments.DeleteCascade(ctx, 1), domain.ErrDepartmentNotFound)
}

func TestSaleRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	g := importSample(t, db)
	sales := repository.NewSaleRepository(db)

	eve, err := g.FindEmployeeByName("Eve Summers")
	require.NoError(t, err)

	got := salesOf(loadSnapshot(t, db), eve.ID)
	require.Len(t, got, 2)
	assert.Equal(t, 9500.0, got[0].Amount)

	require.NoError(t, sales.Delete(ctx, got[0].ID))
	assert.Len(t, salesOf(loadSnapshot(t, db), eve.ID), 1)
	assert.ErrorIs(t, sales.Delete(ctx, got[0].ID), domain.ErrSaleNotFound)
}

func TestDepartmentRepository_DeleteReassign(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	importSample(t, db)
	departments := repository.NewDepartmentRepository(db)

	require.NoError(t, departments.DeleteReassign(ctx, 1, 3))

	loaded := loadSnapshot(t, db)
	assert.Len(t, employeesIn(loaded, 3), 3)
	assert.Len(t, loaded.Departments, 2)
	assert.Len(t, loaded.Sales, 5, "sales follow their employees")
}
