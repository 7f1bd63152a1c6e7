package dto

// CreateCompanyRequest - запрос на создание компании
type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
	Role string `json:"role" validate:"required,notblank,max=200"`
}

// MoveEmployeeRequest - запрос на перевод сотрудника в другое подразделение
type MoveEmployeeRequest struct {
	DepartmentID int64 `json:"department_id" validate:"required,min=1"`
}

// CreateSaleRequest - запрос на регистрацию продажи.
// Знак суммы проверяется в графе, чтобы вернуть ErrInvalidAmount.
type CreateSaleRequest struct {
	Amount *float64 `json:"amount" validate:"required,lte=1000000000000"`
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
}

// CompanyResponse - ответ с данными компании
type CompanyResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Departments []DepartmentResponse `json:"departments,omitempty"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID        int64              `json:"id"`
	CompanyID int64              `json:"company_id"`
	Name      string             `json:"name"`
	Employees []EmployeeResponse `json:"employees,omitempty"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID           int64   `json:"id"`
	DepartmentID int64   `json:"department_id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	TotalSales   float64 `json:"total_sales"`
}

// SaleResponse - ответ с данными продажи
type SaleResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
}

// RemovedResponse - число удалённых сотрудников
type RemovedResponse struct {
	Removed int `json:"removed"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// DeleteDepartmentQuery - параметры запроса удаления
type DeleteDepartmentQuery struct {
	Mode                   string `validate:"required,oneof=cascade reassign"`
	ReassignToDepartmentID *int64 `validate:"required_if=Mode reassign,omitempty,min=1"`
}

// TopSalesQuery - параметры отчёта о крупнейших продажах
type TopSalesQuery struct {
	N int `validate:"min=1,max=100"`
}

// SearchQuery - параметры сложного поиска сотрудников
type SearchQuery struct {
	Departments []string `validate:"dive,min=1,max=200"`
	MinTotal    float64  `validate:"gte=0"`
	Limit       int      `validate:"min=0,max=1000"`
}
