package repository

import (
	"context"

	"github.com/company-sales-api/internal/domain"
	"gorm.io/gorm"
)

// CompanyRepository определяет интерфейс для работы с компаниями
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository создаёт новый экземпляр репозитория
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}
