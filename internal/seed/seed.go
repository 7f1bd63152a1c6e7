// Package seed заполняет граф демонстрационными данными компании Acme Inc.
package seed

import (
	"fmt"
	"time"

	"github.com/company-sales-api/internal/domain"
	"github.com/company-sales-api/internal/graph"
)

// CompanyName - название демонстрационной компании
const CompanyName = "Acme Inc."

// Departments - отделы в порядке добавления
var Departments = []string{"Sales", "Engineering", "Human Resources"}

// EmployeeRow - строка таблицы сотрудников
type EmployeeRow struct {
	Name       string
	Role       string
	Department string
}

// Employees - сотрудники в порядке добавления
var Employees = []EmployeeRow{
	{"Alice Martin", "Sales Manager", "Sales"},
	{"Bob Sanchez", "Software Engineer", "Engineering"},
	{"Carol White", "HR Coordinator", "Human Resources"},
	{"David Chen", "QA Engineer", "Engineering"},
	{"Eve Summers", "Account Executive", "Sales"},
}

// SaleRow - строка таблицы продаж
type SaleRow struct {
	Employee string
	Amount   float64
	Date     string
}

// Sales - продажи в порядке добавления
var Sales = []SaleRow{
	{"Alice Martin", 15000, "2024-12-01"},
	{"Eve Summers", 9500, "2025-01-15"},
	{"Alice Martin", 12000, "2025-02-01"},
	{"Eve Summers", 7500, "2025-03-10"},
	{"Alice Martin", 5000, "2025-04-05"},
}

// Populate добавляет демонстрационные данные в граф
func Populate(g *graph.Graph) error {
	company := g.AddCompany(CompanyName)

	departments := make(map[string]int64, len(Departments))
	for _, name := range Departments {
		d, err := g.AddDepartment(company.ID, name)
		if err != nil {
			return fmt.Errorf("add department %q: %w", name, err)
		}
		departments[name] = d.ID
	}

	employees := make(map[string]int64, len(Employees))
	for _, row := range Employees {
		deptID, ok := departments[row.Department]
		if !ok {
			return fmt.Errorf("employee %q: %w", row.Name, domain.ErrDepartmentNotFound)
		}
		e, err := g.AddEmployee(deptID, row.Name, row.Role)
		if err != nil {
			return fmt.Errorf("add employee %q: %w", row.Name, err)
		}
		employees[row.Name] = e.ID
	}

	for _, row := range Sales {
		empID, ok := employees[row.Employee]
		if !ok {
			return fmt.Errorf("sale of %q: %w", row.Employee, domain.ErrEmployeeNotFound)
		}
		date, err := time.Parse(domain.DateLayout, row.Date)
		if err != nil {
			return fmt.Errorf("sale date %q: %w", row.Date, err)
		}
		if _, err := g.AddSale(empID, row.Amount, date); err != nil {
			return fmt.Errorf("add sale of %q: %w", row.Employee, err)
		}
	}

	return nil
}

// NewGraph возвращает новый граф с демонстрационными данными
func NewGraph() (*graph.Graph, error) {
	g := graph.New()
	if err := Populate(g); err != nil {
		return nil, err
	}
	return g, nil
}
