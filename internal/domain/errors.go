package domain

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidAmount = errors.New("sale amount must be between 0 and 1e12")
	ErrDanglingOwner = errors.New("owner does not exist")
)

// Ошибки поиска сущностей, errors.Is(err, ErrNotFound) == true
var (
	ErrCompanyNotFound    = fmt.Errorf("company %w", ErrNotFound)
	ErrDepartmentNotFound = fmt.Errorf("department %w", ErrNotFound)
	ErrEmployeeNotFound   = fmt.Errorf("employee %w", ErrNotFound)
	ErrSaleNotFound       = fmt.Errorf("sale %w", ErrNotFound)
)

// Ошибки удаления подразделения
var (
	ErrInvalidDeleteMode      = errors.New("invalid delete mode")
	ErrReassignTargetRequired = errors.New("reassign_to_department_id is required when mode is reassign")
	ErrReassignTargetNotFound = errors.New("target department for reassignment not found")
	ErrCannotReassignToSelf   = errors.New("cannot reassign employees to the same department being deleted")
)

// DanglingOwner оборачивает ошибку поиска владельца: результат
// удовлетворяет и errors.Is(err, ErrDanglingOwner), и errors.Is(err, notFound).
func DanglingOwner(notFound error, id int64) error {
	return fmt.Errorf("%w: %w (id=%d)", ErrDanglingOwner, notFound, id)
}
