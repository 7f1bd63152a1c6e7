package graph

import (
	"github.com/company-sales-api/internal/domain"
)

// Все методы чтения возвращают копии сущностей в порядке добавления.

func (g *Graph) Companies() []domain.Company {
	return collect(g.companyOrder, g.companies)
}

func (g *Graph) Departments() []domain.Department {
	return collect(g.departmentOrder, g.departments)
}

func (g *Graph) Employees() []domain.Employee {
	return collect(g.employeeOrder, g.employees)
}

func (g *Graph) Sales() []domain.Sale {
	return collect(g.saleOrder, g.sales)
}

// DepartmentsOf возвращает отделы компании
func (g *Graph) DepartmentsOf(companyID int64) []domain.Department {
	return collect(g.departmentsByCompany[companyID], g.departments)
}

// EmployeesOf возвращает сотрудников отдела
func (g *Graph) EmployeesOf(departmentID int64) []domain.Employee {
	return collect(g.employeesByDept[departmentID], g.employees)
}

// SalesOf возвращает продажи сотрудника
func (g *Graph) SalesOf(employeeID int64) []domain.Sale {
	return collect(g.salesByEmployee[employeeID], g.sales)
}

func (g *Graph) Company(id int64) (domain.Company, bool) {
	return lookup(g.companies, id)
}

func (g *Graph) Department(id int64) (domain.Department, bool) {
	return lookup(g.departments, id)
}

func (g *Graph) Sale(id int64) (domain.Sale, bool) {
	return lookup(g.sales, id)
}

// TotalSales суммирует продажи сотрудника. Сумма каждый раз
// пересчитывается, без округления.
func (g *Graph) TotalSales(employeeID int64) float64 {
	var total float64
	for _, id := range g.salesByEmployee[employeeID] {
		total += g.sales[id].Amount
	}
	return total
}

// EmployeeCount возвращает число сотрудников отдела
func (g *Graph) EmployeeCount(departmentID int64) int {
	return len(g.employeesByDept[departmentID])
}

// Stats - размеры коллекций графа
type Stats struct {
	Companies   int
	Departments int
	Employees   int
	Sales       int
}

func (g *Graph) Stats() Stats {
	return Stats{
		Companies:   len(g.companies),
		Departments: len(g.departments),
		Employees:   len(g.employees),
		Sales:       len(g.sales),
	}
}

func collect[T any](ids []int64, items map[int64]*T) []T {
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		result = append(result, *items[id])
	}
	return result
}

func lookup[T any](items map[int64]*T, id int64) (T, bool) {
	item, ok := items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return *item, true
}
