// Package graph хранит организационное дерево Company → Department → Employee → Sale
// в виде арены сущностей, индексированных по id.
//
// Отношения выражены через id: дочерняя сущность хранит id владельца,
// владелец - упорядоченный список id дочерних. Graph не потокобезопасен.
package graph

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/company-sales-api/internal/domain"
)

// Graph - арена сущностей с отношениями по id
type Graph struct {
	companies   map[int64]*domain.Company
	departments map[int64]*domain.Department
	employees   map[int64]*domain.Employee
	sales       map[int64]*domain.Sale

	// Порядок вставки
	companyOrder    []int64
	departmentOrder []int64
	employeeOrder   []int64
	saleOrder       []int64

	// Владение: id владельца -> id дочерних в порядке добавления
	departmentsByCompany map[int64][]int64
	employeesByDept      map[int64][]int64
	salesByEmployee      map[int64][]int64

	nextCompanyID    int64
	nextDepartmentID int64
	nextEmployeeID   int64
	nextSaleID       int64
}

// New создаёт пустой граф
func New() *Graph {
	return &Graph{
		companies:            make(map[int64]*domain.Company),
		departments:          make(map[int64]*domain.Department),
		employees:            make(map[int64]*domain.Employee),
		sales:                make(map[int64]*domain.Sale),
		departmentsByCompany: make(map[int64][]int64),
		employeesByDept:      make(map[int64][]int64),
		salesByEmployee:      make(map[int64][]int64),
		nextCompanyID:        1,
		nextDepartmentID:     1,
		nextEmployeeID:       1,
		nextSaleID:           1,
	}
}

// AddCompany добавляет компанию
func (g *Graph) AddCompany(name string) domain.Company {
	c := &domain.Company{ID: g.nextCompanyID, Name: strings.TrimSpace(name)}
	g.nextCompanyID++
	g.insertCompany(c)
	return *c
}

// AddDepartment создаёт отдел, принадлежащий компании
func (g *Graph) AddDepartment(companyID int64, name string) (domain.Department, error) {
	if _, ok := g.companies[companyID]; !ok {
		return domain.Department{}, domain.DanglingOwner(domain.ErrCompanyNotFound, companyID)
	}

	d := &domain.Department{ID: g.nextDepartmentID, CompanyID: companyID, Name: strings.TrimSpace(name)}
	g.nextDepartmentID++
	g.insertDepartment(d)
	return *d, nil
}

// AddEmployee создаёт сотрудника в отделе
func (g *Graph) AddEmployee(departmentID int64, name, role string) (domain.Employee, error) {
	if _, ok := g.departments[departmentID]; !ok {
		return domain.Employee{}, domain.DanglingOwner(domain.ErrDepartmentNotFound, departmentID)
	}

	e := &domain.Employee{
		ID:           g.nextEmployeeID,
		DepartmentID: departmentID,
		Name:         strings.TrimSpace(name),
		Role:         strings.TrimSpace(role),
	}
	g.nextEmployeeID++
	g.insertEmployee(e)
	return *e, nil
}

// AddSale регистрирует продажу сотрудника
func (g *Graph) AddSale(employeeID int64, amount float64, date time.Time) (domain.Sale, error) {
	if err := validateAmount(amount); err != nil {
		return domain.Sale{}, err
	}
	if _, ok := g.employees[employeeID]; !ok {
		return domain.Sale{}, domain.DanglingOwner(domain.ErrEmployeeNotFound, employeeID)
	}

	s := &domain.Sale{
		ID:         g.nextSaleID,
		EmployeeID: employeeID,
		Amount:     amount,
		Date:       domain.TruncateDate(date),
	}
	g.nextSaleID++
	g.insertSale(s)
	return *s, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 || amount > domain.MaxSaleAmount {
		return domain.ErrInvalidAmount
	}
	return nil
}

// RemoveEmployee удаляет сотрудника из отдела вместе с его продажами
func (g *Graph) RemoveEmployee(departmentID, employeeID int64) error {
	if _, ok := g.departments[departmentID]; !ok {
		return domain.ErrDepartmentNotFound
	}
	e, ok := g.employees[employeeID]
	if !ok || e.DepartmentID != departmentID {
		return domain.ErrEmployeeNotFound
	}

	g.deleteEmployee(employeeID)
	return nil
}

// RemoveAllEmployees удаляет всех сотрудников отдела каскадно, возвращает их количество
func (g *Graph) RemoveAllEmployees(departmentID int64) (int, error) {
	if _, ok := g.departments[departmentID]; !ok {
		return 0, domain.ErrDepartmentNotFound
	}

	ids := slices.Clone(g.employeesByDept[departmentID])
	for _, id := range ids {
		g.deleteEmployee(id)
	}
	return len(ids), nil
}

// RemoveCompany удаляет компанию со всеми подразделениями
func (g *Graph) RemoveCompany(companyID int64) error {
	if _, ok := g.companies[companyID]; !ok {
		return domain.ErrCompanyNotFound
	}

	for _, id := range slices.Clone(g.departmentsByCompany[companyID]) {
		if err := g.RemoveDepartment(id); err != nil {
			return err
		}
	}
	delete(g.departmentsByCompany, companyID)
	g.companyOrder = removeID(g.companyOrder, companyID)
	delete(g.companies, companyID)
	return nil
}

// RemoveDepartment удаляет отдел вместе с сотрудниками и их продажами
func (g *Graph) RemoveDepartment(departmentID int64) error {
	d, ok := g.departments[departmentID]
	if !ok {
		return domain.ErrDepartmentNotFound
	}

	for _, id := range slices.Clone(g.employeesByDept[departmentID]) {
		g.deleteEmployee(id)
	}
	delete(g.employeesByDept, departmentID)
	g.departmentsByCompany[d.CompanyID] = removeID(g.departmentsByCompany[d.CompanyID], departmentID)
	g.departmentOrder = removeID(g.departmentOrder, departmentID)
	delete(g.departments, departmentID)
	return nil
}

// MoveEmployee переводит сотрудника в другой отдел; продажи остаются за ним
func (g *Graph) MoveEmployee(employeeID, toDepartmentID int64) (domain.Employee, error) {
	e, ok := g.employees[employeeID]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	if _, ok := g.departments[toDepartmentID]; !ok {
		return domain.Employee{}, domain.DanglingOwner(domain.ErrDepartmentNotFound, toDepartmentID)
	}
	if e.DepartmentID == toDepartmentID {
		return *e, nil
	}

	g.employeesByDept[e.DepartmentID] = removeID(g.employeesByDept[e.DepartmentID], employeeID)
	e.DepartmentID = toDepartmentID
	g.employeesByDept[toDepartmentID] = append(g.employeesByDept[toDepartmentID], employeeID)
	return *e, nil
}

// ReassignEmployees переводит всех сотрудников отдела from в отдел to
func (g *Graph) ReassignEmployees(fromDepartmentID, toDepartmentID int64) (int, error) {
	if _, ok := g.departments[fromDepartmentID]; !ok {
		return 0, domain.ErrDepartmentNotFound
	}
	if _, ok := g.departments[toDepartmentID]; !ok {
		return 0, domain.DanglingOwner(domain.ErrDepartmentNotFound, toDepartmentID)
	}
	if fromDepartmentID == toDepartmentID {
		return 0, nil
	}

	ids := slices.Clone(g.employeesByDept[fromDepartmentID])
	for _, id := range ids {
		if _, err := g.MoveEmployee(id, toDepartmentID); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

// RemoveSale удаляет одну продажу
func (g *Graph) RemoveSale(saleID int64) error {
	s, ok := g.sales[saleID]
	if !ok {
		return domain.ErrSaleNotFound
	}

	g.salesByEmployee[s.EmployeeID] = removeID(g.salesByEmployee[s.EmployeeID], saleID)
	g.saleOrder = removeID(g.saleOrder, saleID)
	delete(g.sales, saleID)
	return nil
}

// FindEmployeeByID ищет сотрудника по id
func (g *Graph) FindEmployeeByID(id int64) (domain.Employee, error) {
	e, ok := g.employees[id]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	return *e, nil
}

// FindEmployeeByName ищет первого по порядку добавления сотрудника
// с указанным именем без учёта регистра
func (g *Graph) FindEmployeeByName(name string) (domain.Employee, error) {
	name = strings.TrimSpace(name)
	for _, id := range g.employeeOrder {
		if e := g.employees[id]; strings.EqualFold(e.Name, name) {
			return *e, nil
		}
	}
	return domain.Employee{}, domain.ErrEmployeeNotFound
}

func (g *Graph) insertCompany(c *domain.Company) {
	g.companies[c.ID] = c
	g.companyOrder = append(g.companyOrder, c.ID)
}

func (g *Graph) insertDepartment(d *domain.Department) {
	g.departments[d.ID] = d
	g.departmentOrder = append(g.departmentOrder, d.ID)
	g.departmentsByCompany[d.CompanyID] = append(g.departmentsByCompany[d.CompanyID], d.ID)
}

func (g *Graph) insertEmployee(e *domain.Employee) {
	g.employees[e.ID] = e
	g.employeeOrder = append(g.employeeOrder, e.ID)
	g.employeesByDept[e.DepartmentID] = append(g.employeesByDept[e.DepartmentID], e.ID)
}

func (g *Graph) insertSale(s *domain.Sale) {
	g.sales[s.ID] = s
	g.saleOrder = append(g.saleOrder, s.ID)
	g.salesByEmployee[s.EmployeeID] = append(g.salesByEmployee[s.EmployeeID], s.ID)
}

// deleteEmployee удаляет сотрудника и все его продажи; обе стороны
// отношения обновляются вместе
func (g *Graph) deleteEmployee(employeeID int64) {
	e := g.employees[employeeID]

	for _, saleID := range g.salesByEmployee[employeeID] {
		delete(g.sales, saleID)
		g.saleOrder = removeID(g.saleOrder, saleID)
	}
	delete(g.salesByEmployee, employeeID)

	g.employeesByDept[e.DepartmentID] = removeID(g.employeesByDept[e.DepartmentID], employeeID)
	g.employeeOrder = removeID(g.employeeOrder, employeeID)
	delete(g.employees, employeeID)
}

func removeID(ids []int64, id int64) []int64 {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}
