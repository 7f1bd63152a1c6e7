package report

import (
	"time"

	"github.com/company-sales-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount округляет сумму до двух знаков только для вывода: "$15,000.00"
func FormatAmount(amount float64) string {
	return message.NewPrinter(language.English).Sprintf("$%.2f", amount)
}

// FormatDate форматирует календарную дату продажи
func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}
