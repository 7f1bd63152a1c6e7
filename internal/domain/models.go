package domain

import (
	"time"
)

// Company представляет компанию - корень иерархии
type Company struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" gorm:"type:varchar(200);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Company) TableName() string {
	return "companies"
}

// Department представляет отдел компании.
// CompanyID - невладеющая обратная ссылка на компанию.
type Department struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CompanyID int64  `json:"company_id" gorm:"not null;index"`
	Name      string `json:"name" gorm:"type:varchar(200);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника отдела
type Employee struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	DepartmentID int64  `json:"department_id" gorm:"not null;index"`
	Name         string `json:"name" gorm:"type:varchar(200);not null"`
	Role         string `json:"role" gorm:"type:varchar(200);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Sale представляет продажу, совершённую сотрудником
type Sale struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	EmployeeID int64     `json:"employee_id" gorm:"not null;index"`
	Amount     float64   `json:"amount" gorm:"type:double precision;not null"`
	Date       time.Time `json:"date" gorm:"column:sold_on;type:date;not null"`
}

// TableName задаёт имя таблицы для GORM
func (Sale) TableName() string {
	return "sales"
}

// MaxSaleAmount - верхняя граница суммы продажи; сумма любых продаж остаётся конечной
const MaxSaleAmount = 1e12

// DateLayout - формат календарной даты продажи
const DateLayout = "2006-01-02"

// TruncateDate приводит момент времени к календарной дате (полночь UTC)
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
