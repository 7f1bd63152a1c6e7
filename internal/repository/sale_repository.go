package repository

import (
	"context"

	"github.com/company-sales-api/internal/domain"
	"gorm.io/gorm"
)

// SaleRepository определяет интерфейс для работы с продажами
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	Delete(ctx context.Context, id int64) error
}

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository создаёт новый экземпляр репозитория
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Sale{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}
