package report

import (
	"github.com/company-sales-api/internal/graph"
)

// PodiumSize - число призовых мест в таблице лидеров
const PodiumSize = 3

// LeaderboardRow - строка таблицы лидеров
type LeaderboardRow struct {
	Rank int `json:"rank"`
	SaleLine
	FormattedAmount string `json:"formatted_amount"`
	FormattedDate   string `json:"formatted_date"`
	Podium          bool   `json:"podium"`
}

// Leaderboard - все продажи по убыванию суммы и итоги по ним
type Leaderboard struct {
	Rows  []LeaderboardRow `json:"rows"`
	Count int              `json:"count"`
	Total float64          `json:"total"`
	Mean  float64          `json:"mean"`
}

// SalesLeaderboard строит таблицу лидеров продаж
func SalesLeaderboard(g *graph.Graph) Leaderboard {
	lines := rankedSales(g)
	board := Leaderboard{Rows: make([]LeaderboardRow, 0, len(lines)), Count: len(lines)}

	for i, line := range lines {
		board.Rows = append(board.Rows, LeaderboardRow{
			Rank:            i + 1,
			SaleLine:        line,
			FormattedAmount: FormatAmount(line.Amount),
			FormattedDate:   FormatDate(line.Date),
			Podium:          i < PodiumSize,
		})
		board.Total += line.Amount
	}
	board.Mean = mean(board.Total, board.Count)

	return board
}

// CompanyTotals - сводка по компании
type CompanyTotals struct {
	CompanyID   int64   `json:"company_id"`
	Company     string  `json:"company"`
	Departments int     `json:"departments"`
	Employees   int     `json:"employees"`
	Sales       int     `json:"sales"`
	Total       float64 `json:"total"`
	Mean        float64 `json:"mean"`
}

// CompanySummary считает численность и объём продаж каждой компании
func CompanySummary(g *graph.Graph) []CompanyTotals {
	companies := g.Companies()
	result := make([]CompanyTotals, 0, len(companies))

	for _, c := range companies {
		row := CompanyTotals{CompanyID: c.ID, Company: c.Name}
		for _, d := range g.DepartmentsOf(c.ID) {
			row.Departments++
			for _, e := range g.EmployeesOf(d.ID) {
				row.Employees++
				row.Sales += len(g.SalesOf(e.ID))
				row.Total += g.TotalSales(e.ID)
			}
		}
		row.Mean = mean(row.Total, row.Sales)
		result = append(result, row)
	}

	return result
}

func mean(total float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
