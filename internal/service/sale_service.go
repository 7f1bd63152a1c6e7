package service

import (
	"context"
	"time"

	"github.com/company-sales-api/internal/domain"
	"github.com/company-sales-api/internal/dto"
	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/repository"
)

// SaleService определяет интерфейс бизнес-логики для продаж
type SaleService interface {
	Create(ctx context.Context, employeeID int64, req *dto.CreateSaleRequest) (*domain.Sale, error)
	Delete(ctx context.Context, id int64) error
}

type saleService struct {
	store    *GraphStore
	saleRepo repository.SaleRepository
}

// NewSaleService создаёт новый экземпляр сервиса
func NewSaleService(store *GraphStore, saleRepo repository.SaleRepository) SaleService {
	return &saleService{
		store:    store,
		saleRepo: saleRepo,
	}
}

func (s *saleService) Create(ctx context.Context, employeeID int64, req *dto.CreateSaleRequest) (*domain.Sale, error) {
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	var amount float64
	if req.Amount != nil {
		amount = *req.Amount
	}

	var sale domain.Sale
	err = s.store.Write(func(g *graph.Graph) error {
		var err error
		sale, err = g.AddSale(employeeID, amount, date)
		if err != nil {
			return err
		}

		if err := s.saleRepo.Create(ctx, &sale); err != nil {
			_ = g.RemoveSale(sale.ID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

func (s *saleService) Delete(ctx context.Context, id int64) error {
	return s.store.Write(func(g *graph.Graph) error {
		if _, ok := g.Sale(id); !ok {
			return domain.ErrSaleNotFound
		}

		if err := s.saleRepo.Delete(ctx, id); err != nil {
			return err
		}
		return g.RemoveSale(id)
	})
}
