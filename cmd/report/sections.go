package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/report"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// section - один отчёт: данные для JSON и табличное представление
type section struct {
	name  string
	title string
	data  func(g *graph.Graph, top int, c report.SearchCriteria) any
	table func(w io.Writer, g *graph.Graph, top int, c report.SearchCriteria)
}

var sections = []section{
	{
		name:  "employees-by-department",
		title: "Employees by department",
		data: func(g *graph.Graph, _ int, _ report.SearchCriteria) any {
			return report.EmployeesByDepartment(g)
		},
		table: func(w io.Writer, g *graph.Graph, _ int, _ report.SearchCriteria) {
			t := newTable(w, "Department", "Employee", "Role")
			for _, d := range report.EmployeesByDepartment(g) {
				if d.NoEmployees {
					t.AppendRow(table.Row{d.Department, "(no employees)", ""})
					continue
				}
				for _, e := range d.Employees {
					t.AppendRow(table.Row{d.Department, e.Name, e.Role})
				}
			}
			t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})
			t.Render()
		},
	},
	{
		name:  "sales-per-employee",
		title: "Total sales per employee",
		data: func(g *graph.Graph, _ int, _ report.SearchCriteria) any {
			return report.TotalSalesPerEmployee(g)
		},
		table: func(w io.Writer, g *graph.Graph, _ int, _ report.SearchCriteria) {
			renderTotals(w, report.TotalSalesPerEmployee(g))
		},
	},
	{
		name:  "top-salespeople",
		title: "Top salesperson per department",
		data: func(g *graph.Graph, _ int, _ report.SearchCriteria) any {
			return report.TopSalespersonPerDepartment(g)
		},
		table: func(w io.Writer, g *graph.Graph, _ int, _ report.SearchCriteria) {
			t := newTable(w, "Department", "Employee", "Total")
			for _, s := range report.TopSalespersonPerDepartment(g) {
				if s.Employee == nil {
					t.AppendRow(table.Row{s.Department, "(no employees)", ""})
					continue
				}
				t.AppendRow(table.Row{s.Department, s.Employee.Name, report.FormatAmount(s.Employee.Total)})
			}
			t.Render()
		},
	},
	{
		name:  "employees-without-sales",
		title: "Employees without sales",
		data: func(g *graph.Graph, _ int, _ report.SearchCriteria) any {
			return report.EmployeesWithoutSales(g)
		},
		table: func(w io.Writer, g *graph.Graph, _ int, _ report.SearchCriteria) {
			t := newTable(w, "Employee", "Role", "Department")
			for _, e := range report.EmployeesWithoutSales(g) {
				t.AppendRow(table.Row{e.Name, e.Role, e.Department})
			}
			t.Render()
		},
	},
	{
		name:  "departments-by-headcount",
		title: "Departments by headcount",
		data: func(g *graph.Graph, _ int, _ report.SearchCriteria) any {
			return report.DepartmentsByHeadcount(g)
		},
		table: func(w io.Writer, g *graph.Graph, _ int, _ report.SearchCriteria) {
			t := newTable(w, "Department", "Employees")
			for _, d := range report.DepartmentsByHeadcount(g) {
				t.AppendRow(table.Row{d.Department, d.Employees})
			}
			t.Render()
		},
	},
	{
		name:  "top-sales",
		title: "Top sales",
		data: func(g *graph.Graph, top int, _ report.SearchCriteria) any {
			return report.TopSales(g, top)
		},
		table: func(w io.Writer, g *graph.Graph, top int, _ report.SearchCriteria) {
			t := newTable(w, "Amount", "Date", "Employee", "Department")
			for _, s := range report.TopSales(g, top) {
				t.AppendRow(table.Row{report.FormatAmount(s.Amount), report.FormatDate(s.Date), s.Employee, s.Department})
			}
			t.Render()
		},
	},
	{
		name:  "leaderboard",
		title: "Sales leaderboard",
		data: func(g *graph.Graph, _ int, _ report.SearchCriteria) any {
			return report.SalesLeaderboard(g)
		},
		table: func(w io.Writer, g *graph.Graph, _ int, _ report.SearchCriteria) {
			board := report.SalesLeaderboard(g)

			t := newTable(w, "#", "Amount", "Date", "Employee", "Department")
			for _, row := range board.Rows {
				rank := fmt.Sprint(row.Rank)
				if row.Podium {
					rank = text.Bold.Sprint(rank)
				}
				t.AppendRow(table.Row{rank, row.FormattedAmount, row.FormattedDate, row.Employee, row.Department})
			}
			t.AppendFooter(table.Row{"", report.FormatAmount(board.Total), "", fmt.Sprintf("%d sales", board.Count),
				"mean " + report.FormatAmount(board.Mean)})
			t.Render()
		},
	},
	{
		name:  "search",
		title: "Employee search",
		data: func(g *graph.Graph, _ int, c report.SearchCriteria) any {
			return report.SearchEmployees(g, c)
		},
		table: func(w io.Writer, g *graph.Graph, _ int, c report.SearchCriteria) {
			fmt.Fprintf(w, "departments: %s, total above %s, limit %d\n",
				describeDepartments(c.Departments), report.FormatAmount(c.MinTotal), c.Limit)
			renderTotals(w, report.SearchEmployees(g, c))
		},
	},
	{
		name:  "company-summary",
		title: "Company summary",
		data: func(g *graph.Graph, _ int, _ report.SearchCriteria) any {
			return report.CompanySummary(g)
		},
		table: func(w io.Writer, g *graph.Graph, _ int, _ report.SearchCriteria) {
			t := newTable(w, "Company", "Departments", "Employees", "Sales", "Total", "Mean")
			for _, c := range report.CompanySummary(g) {
				t.AppendRow(table.Row{c.Company, c.Departments, c.Employees, c.Sales,
					report.FormatAmount(c.Total), report.FormatAmount(c.Mean)})
			}
			t.Render()
		},
	},
}

func sectionNames() []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.name
	}
	return names
}

func newTable(w io.Writer, header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))
	return t
}

func renderTotals(w io.Writer, totals []report.EmployeeTotal) {
	t := newTable(w, "Employee", "Department", "Sales", "Total")
	for _, e := range totals {
		t.AppendRow(table.Row{e.Name, e.Department, e.SaleCount, report.FormatAmount(e.Total)})
	}
	t.Render()
}

func describeDepartments(names []string) string {
	if len(names) == 0 {
		return "any"
	}
	return strings.Join(names, ", ")
}
