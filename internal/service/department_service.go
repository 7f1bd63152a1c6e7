package service

import (
	"context"

	"github.com/company-sales-api/internal/domain"
	"github.com/company-sales-api/internal/dto"
	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	Create(ctx context.Context, companyID int64, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	GetByID(ctx context.Context, id int64) (*DepartmentDetails, error)
	Delete(ctx context.Context, id int64, query *dto.DeleteDepartmentQuery) error
}

type departmentService struct {
	store    *GraphStore
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(store *GraphStore, deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{
		store:    store,
		deptRepo: deptRepo,
	}
}

func (s *departmentService) Create(ctx context.Context, companyID int64, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	var dept domain.Department

	err := s.store.Write(func(g *graph.Graph) error {
		var err error
		dept, err = g.AddDepartment(companyID, req.Name)
		if err != nil {
			return err
		}

		if err := s.deptRepo.Create(ctx, &dept); err != nil {
			_ = g.RemoveDepartment(dept.ID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dept, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*DepartmentDetails, error) {
	var details *DepartmentDetails

	s.store.Read(func(g *graph.Graph) {
		if dept, ok := g.Department(id); ok {
			d := departmentDetails(g, dept)
			details = &d
		}
	})
	if details == nil {
		return nil, domain.ErrDepartmentNotFound
	}

	return details, nil
}

// Delete удаляет подразделение: в режиме cascade вместе с сотрудниками и продажами,
// в режиме reassign сотрудники сначала переводятся в целевое подразделение
func (s *departmentService) Delete(ctx context.Context, id int64, query *dto.DeleteDepartmentQuery) error {
	return s.store.Write(func(g *graph.Graph) error {
		// Проверяем существование подразделения
		if _, ok := g.Department(id); !ok {
			return domain.ErrDepartmentNotFound
		}

		switch query.Mode {
		case "cascade":
			if err := s.deptRepo.DeleteCascade(ctx, id); err != nil {
				return err
			}
			return g.RemoveDepartment(id)

		case "reassign":
			if query.ReassignToDepartmentID == nil {
				return domain.ErrReassignTargetRequired
			}

			targetID := *query.ReassignToDepartmentID

			// Нельзя переназначить в то же подразделение
			if targetID == id {
				return domain.ErrCannotReassignToSelf
			}

			// Проверяем существование целевого подразделения
			if _, ok := g.Department(targetID); !ok {
				return domain.ErrReassignTargetNotFound
			}

			// Переназначаем сотрудников и удаляем подразделение одной транзакцией
			if err := s.deptRepo.DeleteReassign(ctx, id, targetID); err != nil {
				return err
			}
			if _, err := g.ReassignEmployees(id, targetID); err != nil {
				return err
			}
			return g.RemoveDepartment(id)

		default:
			return domain.ErrInvalidDeleteMode
		}
	})
}
