package repository

import (
	"context"

	"github.com/company-sales-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	DeleteCascade(ctx context.Context, id int64) error
	DeleteReassign(ctx context.Context, id, targetID int64) error
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

// DeleteCascade удаляет подразделение, его сотрудников и их продажи в одной транзакции.
// Каскад выполняется явно: SQLite не проверяет внешние ключи по умолчанию.
func (r *departmentRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteEmployeesOf(tx, id); err != nil {
			return err
		}

		result := tx.Delete(&domain.Department{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrDepartmentNotFound
		}
		return nil
	})
}

// DeleteReassign переводит сотрудников в подразделение targetID и удаляет подразделение id
func (r *departmentRepository) DeleteReassign(ctx context.Context, id, targetID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Employee{}).
			Where("department_id = ?", id).
			Update("department_id", targetID).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&domain.Department{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrDepartmentNotFound
		}
		return nil
	})
}

// deleteEmployeesOf удаляет сотрудников подразделения вместе с продажами
func deleteEmployeesOf(tx *gorm.DB, departmentID int64) error {
	employeeIDs := tx.Model(&domain.Employee{}).Select("id").Where("department_id = ?", departmentID)

	if err := tx.Where("employee_id IN (?)", employeeIDs).Delete(&domain.Sale{}).Error; err != nil {
		return err
	}
	return tx.Where("department_id = ?", departmentID).Delete(&domain.Employee{}).Error
}
