// Package report содержит агрегирующие запросы над графом.
//
// Запросы только читают граф и никогда не возвращают ошибку:
// отсутствие данных - это пустой результат.
package report

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/company-sales-api/internal/graph"
)

// EmployeeLine - сотрудник в группировке по отделам
type EmployeeLine struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// DepartmentGroup - отдел и его сотрудники, упорядоченные по имени
type DepartmentGroup struct {
	DepartmentID int64          `json:"department_id"`
	Department   string         `json:"department"`
	Employees    []EmployeeLine `json:"employees"`
	NoEmployees  bool           `json:"no_employees"`
}

// EmployeeTotal - сумма продаж сотрудника
type EmployeeTotal struct {
	EmployeeID   int64   `json:"employee_id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	DepartmentID int64   `json:"department_id"`
	Department   string  `json:"department"`
	SaleCount    int     `json:"sale_count"`
	Total        float64 `json:"total"`
}

// TopSeller - лучший продавец отдела; Employee == nil, если в отделе нет сотрудников
type TopSeller struct {
	DepartmentID int64          `json:"department_id"`
	Department   string         `json:"department"`
	Employee     *EmployeeTotal `json:"employee"`
	NoEmployees  bool           `json:"no_employees"`
}

// DepartmentHeadcount - численность отдела
type DepartmentHeadcount struct {
	DepartmentID int64  `json:"department_id"`
	Department   string `json:"department"`
	Employees    int    `json:"employees"`
}

// SaleLine - продажа с контекстом владельцев
type SaleLine struct {
	SaleID       int64     `json:"sale_id"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	EmployeeID   int64     `json:"employee_id"`
	Employee     string    `json:"employee"`
	DepartmentID int64     `json:"department_id"`
	Department   string    `json:"department"`
}

// EmployeesByDepartment группирует сотрудников по отделам в порядке добавления отделов
func EmployeesByDepartment(g *graph.Graph) []DepartmentGroup {
	departments := g.Departments()
	result := make([]DepartmentGroup, 0, len(departments))

	for _, d := range departments {
		group := DepartmentGroup{DepartmentID: d.ID, Department: d.Name, Employees: []EmployeeLine{}}
		for _, e := range g.EmployeesOf(d.ID) {
			group.Employees = append(group.Employees, EmployeeLine{ID: e.ID, Name: e.Name, Role: e.Role})
		}
		slices.SortStableFunc(group.Employees, func(a, b EmployeeLine) int {
			return cmp.Compare(a.Name, b.Name)
		})
		group.NoEmployees = len(group.Employees) == 0
		result = append(result, group)
	}

	return result
}

// TotalSalesPerEmployee считает сумму продаж каждого сотрудника.
// Результат упорядочен по убыванию суммы, при равенстве - по порядку добавления.
func TotalSalesPerEmployee(g *graph.Graph) []EmployeeTotal {
	totals := employeeTotals(g)
	sortByTotalDesc(totals)
	return totals
}

// TopSalespersonPerDepartment находит сотрудника с максимальной суммой продаж
// в каждом отделе; при равенстве побеждает первый по порядку отдела
func TopSalespersonPerDepartment(g *graph.Graph) []TopSeller {
	departments := g.Departments()
	result := make([]TopSeller, 0, len(departments))

	for _, d := range departments {
		top := TopSeller{DepartmentID: d.ID, Department: d.Name}
		for _, e := range g.EmployeesOf(d.ID) {
			total := totalOf(g, e.ID, d.Name)
			if top.Employee == nil || total.Total > top.Employee.Total {
				top.Employee = &total
			}
		}
		top.NoEmployees = top.Employee == nil
		result = append(result, top)
	}

	return result
}

// EmployeesWithoutSales возвращает сотрудников без продаж или с нулевой суммой
func EmployeesWithoutSales(g *graph.Graph) []EmployeeTotal {
	result := []EmployeeTotal{}
	for _, t := range employeeTotals(g) {
		if t.SaleCount == 0 || t.Total <= 0 {
			result = append(result, t)
		}
	}
	return result
}

// DepartmentsByHeadcount упорядочивает отделы по числу сотрудников (по убыванию)
func DepartmentsByHeadcount(g *graph.Graph) []DepartmentHeadcount {
	departments := g.Departments()
	result := make([]DepartmentHeadcount, 0, len(departments))

	for _, d := range departments {
		result = append(result, DepartmentHeadcount{
			DepartmentID: d.ID,
			Department:   d.Name,
			Employees:    g.EmployeeCount(d.ID),
		})
	}

	slices.SortStableFunc(result, func(a, b DepartmentHeadcount) int {
		return cmp.Compare(b.Employees, a.Employees)
	})
	return result
}

// TopSales возвращает n крупнейших продаж. Порядок: сумма по убыванию,
// затем дата по убыванию, затем порядок добавления.
func TopSales(g *graph.Graph, n int) []SaleLine {
	if n <= 0 {
		return []SaleLine{}
	}
	lines := rankedSales(g)
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// SearchCriteria - параметры сложного поиска сотрудников
type SearchCriteria struct {
	// Departments - допустимые названия отделов без учёта регистра; пустой список - любые отделы
	Departments []string
	// MinTotal - сумма продаж должна быть строго больше
	MinTotal float64
	// Limit - максимум строк; 0 - без ограничения
	Limit int
}

// SearchEmployees фильтрует сотрудников по отделу и сумме продаж
func SearchEmployees(g *graph.Graph, c SearchCriteria) []EmployeeTotal {
	result := []EmployeeTotal{}
	for _, t := range employeeTotals(g) {
		if !departmentMatches(t.Department, c.Departments) || t.Total <= c.MinTotal {
			continue
		}
		result = append(result, t)
	}

	sortByTotalDesc(result)
	if c.Limit > 0 && len(result) > c.Limit {
		result = result[:c.Limit]
	}
	return result
}

func departmentMatches(name string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	return slices.ContainsFunc(allowed, func(a string) bool {
		return strings.EqualFold(strings.TrimSpace(a), name)
	})
}

func employeeTotals(g *graph.Graph) []EmployeeTotal {
	employees := g.Employees()
	result := make([]EmployeeTotal, 0, len(employees))

	for _, e := range employees {
		d, _ := g.Department(e.DepartmentID)
		result = append(result, totalOf(g, e.ID, d.Name))
	}
	return result
}

func totalOf(g *graph.Graph, employeeID int64, department string) EmployeeTotal {
	e, _ := g.FindEmployeeByID(employeeID)
	return EmployeeTotal{
		EmployeeID:   e.ID,
		Name:         e.Name,
		Role:         e.Role,
		DepartmentID: e.DepartmentID,
		Department:   department,
		SaleCount:    len(g.SalesOf(e.ID)),
		Total:        g.TotalSales(e.ID),
	}
}

func sortByTotalDesc(totals []EmployeeTotal) {
	slices.SortStableFunc(totals, func(a, b EmployeeTotal) int {
		return cmp.Compare(b.Total, a.Total)
	})
}

func rankedSales(g *graph.Graph) []SaleLine {
	sales := g.Sales()
	lines := make([]SaleLine, 0, len(sales))

	for _, s := range sales {
		line := SaleLine{SaleID: s.ID, Amount: s.Amount, Date: s.Date, EmployeeID: s.EmployeeID}
		if e, err := g.FindEmployeeByID(s.EmployeeID); err == nil {
			line.Employee = e.Name
			line.DepartmentID = e.DepartmentID
			if d, ok := g.Department(e.DepartmentID); ok {
				line.Department = d.Name
			}
		}
		lines = append(lines, line)
	}

	slices.SortStableFunc(lines, func(a, b SaleLine) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}
		return b.Date.Compare(a.Date)
	})
	return lines
}
