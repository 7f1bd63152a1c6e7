package repository

import (
	"context"

	"github.com/company-sales-api/internal/domain"
	"github.com/company-sales-api/internal/graph"
	"gorm.io/gorm"
)

const importBatchSize = 100

// SnapshotRepository загружает и сохраняет граф целиком
type SnapshotRepository interface {
	Load(ctx context.Context) (graph.Snapshot, error)
	Import(ctx context.Context, snapshot graph.Snapshot) error
}

type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository создаёт новый экземпляр репозитория
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Load читает все таблицы в порядке id
func (r *snapshotRepository) Load(ctx context.Context) (graph.Snapshot, error) {
	var s graph.Snapshot
	db := r.db.WithContext(ctx)

	if err := db.Order("id ASC").Find(&s.Companies).Error; err != nil {
		return graph.Snapshot{}, err
	}
	if err := db.Order("id ASC").Find(&s.Departments).Error; err != nil {
		return graph.Snapshot{}, err
	}
	if err := db.Order("id ASC").Find(&s.Employees).Error; err != nil {
		return graph.Snapshot{}, err
	}
	if err := db.Order("id ASC").Find(&s.Sales).Error; err != nil {
		return graph.Snapshot{}, err
	}

	return s, nil
}

// Import записывает снимок в одной транзакции, владельцев раньше дочерних
func (r *snapshotRepository) Import(ctx context.Context, s graph.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createAll(tx, s.Companies); err != nil {
			return err
		}
		if err := createAll(tx, s.Departments); err != nil {
			return err
		}
		if err := createAll(tx, s.Employees); err != nil {
			return err
		}
		return createAll(tx, s.Sales)
	})
}

func createAll[T domain.Company | domain.Department | domain.Employee | domain.Sale](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, importBatchSize).Error
}
