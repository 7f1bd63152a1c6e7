package graph

import (
	"cmp"
	"slices"

	"github.com/company-sales-api/internal/domain"
)

// Snapshot - плоское представление графа для хранилища
type Snapshot struct {
	Companies   []domain.Company
	Departments []domain.Department
	Employees   []domain.Employee
	Sales       []domain.Sale
}

// IsEmpty сообщает, что в снимке нет ни одной компании
func (s *Snapshot) IsEmpty() bool {
	return len(s.Companies) == 0
}

// Snapshot выгружает граф. Сотрудники идут в порядке отделов,
// чтобы FromSnapshot восстановил порядок внутри отдела.
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Companies:   g.Companies(),
		Departments: g.Departments(),
		Sales:       g.Sales(),
	}
	for _, d := range s.Departments {
		s.Employees = append(s.Employees, g.EmployeesOf(d.ID)...)
	}
	return s
}

// FromSnapshot восстанавливает граф с сохранёнными id.
// Строки без живого владельца отклоняются с ErrDanglingOwner.
func FromSnapshot(s Snapshot) (*Graph, error) {
	g := New()

	for _, c := range s.Companies {
		g.insertCompany(&c)
		g.nextCompanyID = max(g.nextCompanyID, c.ID+1)
	}

	for _, d := range s.Departments {
		if _, ok := g.companies[d.CompanyID]; !ok {
			return nil, domain.DanglingOwner(domain.ErrCompanyNotFound, d.CompanyID)
		}
		g.insertDepartment(&d)
		g.nextDepartmentID = max(g.nextDepartmentID, d.ID+1)
	}

	for _, e := range s.Employees {
		if _, ok := g.departments[e.DepartmentID]; !ok {
			return nil, domain.DanglingOwner(domain.ErrDepartmentNotFound, e.DepartmentID)
		}
		g.insertEmployee(&e)
		g.nextEmployeeID = max(g.nextEmployeeID, e.ID+1)
	}
	// Глобальный порядок сотрудников - порядок id
	slices.SortFunc(g.employeeOrder, cmp.Compare[int64])

	for _, sale := range s.Sales {
		if _, ok := g.employees[sale.EmployeeID]; !ok {
			return nil, domain.DanglingOwner(domain.ErrEmployeeNotFound, sale.EmployeeID)
		}
		if err := validateAmount(sale.Amount); err != nil {
			return nil, err
		}
		sale.Date = domain.TruncateDate(sale.Date)
		g.insertSale(&sale)
		g.nextSaleID = max(g.nextSaleID, sale.ID+1)
	}

	return g, nil
}
