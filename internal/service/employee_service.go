package service

import (
	"context"

	"github.com/company-sales-api/internal/domain"
	"github.com/company-sales-api/internal/dto"
	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, departmentID int64, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*EmployeeDetails, error)
	FindByName(ctx context.Context, name string) (*EmployeeDetails, error)
	Move(ctx context.Context, id int64, req *dto.MoveEmployeeRequest) (*EmployeeDetails, error)
	Remove(ctx context.Context, departmentID, id int64) error
	RemoveAll(ctx context.Context, departmentID int64) (int, error)
}

type employeeService struct {
	store   *GraphStore
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(store *GraphStore, empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{
		store:   store,
		empRepo: empRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, departmentID int64, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	var emp domain.Employee

	err := s.store.Write(func(g *graph.Graph) error {
		var err error
		emp, err = g.AddEmployee(departmentID, req.Name, req.Role)
		if err != nil {
			return err
		}

		if err := s.empRepo.Create(ctx, &emp); err != nil {
			_ = g.RemoveEmployee(departmentID, emp.ID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &emp, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*EmployeeDetails, error) {
	return s.find(func(g *graph.Graph) (domain.Employee, error) {
		return g.FindEmployeeByID(id)
	})
}

func (s *employeeService) FindByName(ctx context.Context, name string) (*EmployeeDetails, error) {
	return s.find(func(g *graph.Graph) (domain.Employee, error) {
		return g.FindEmployeeByName(name)
	})
}

// find ищет сотрудника и считает его продажи под одной блокировкой чтения
func (s *employeeService) find(lookup func(g *graph.Graph) (domain.Employee, error)) (*EmployeeDetails, error) {
	var details EmployeeDetails
	var err error

	s.store.Read(func(g *graph.Graph) {
		details.Employee, err = lookup(g)
		if err == nil {
			details.TotalSales = g.TotalSales(details.Employee.ID)
		}
	})
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// Move переводит сотрудника в другое подразделение вместе с его продажами
func (s *employeeService) Move(ctx context.Context, id int64, req *dto.MoveEmployeeRequest) (*EmployeeDetails, error) {
	var details EmployeeDetails

	err := s.store.Write(func(g *graph.Graph) error {
		current, err := g.FindEmployeeByID(id)
		if err != nil {
			return err
		}
		if _, ok := g.Department(req.DepartmentID); !ok {
			return domain.DanglingOwner(domain.ErrDepartmentNotFound, req.DepartmentID)
		}

		if current.DepartmentID != req.DepartmentID {
			if err := s.empRepo.UpdateDepartment(ctx, id, req.DepartmentID); err != nil {
				return err
			}
		}

		details.Employee, err = g.MoveEmployee(id, req.DepartmentID)
		if err != nil {
			return err
		}
		details.TotalSales = g.TotalSales(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// Remove удаляет сотрудника подразделения вместе с продажами
func (s *employeeService) Remove(ctx context.Context, departmentID, id int64) error {
	return s.store.Write(func(g *graph.Graph) error {
		if _, ok := g.Department(departmentID); !ok {
			return domain.ErrDepartmentNotFound
		}
		emp, err := g.FindEmployeeByID(id)
		if err != nil || emp.DepartmentID != departmentID {
			return domain.ErrEmployeeNotFound
		}

		if err := s.empRepo.Delete(ctx, id); err != nil {
			return err
		}
		return g.RemoveEmployee(departmentID, id)
	})
}

// RemoveAll удаляет всех сотрудников подразделения вместе с продажами
func (s *employeeService) RemoveAll(ctx context.Context, departmentID int64) (int, error) {
	var removed int

	err := s.store.Write(func(g *graph.Graph) error {
		if _, ok := g.Department(departmentID); !ok {
			return domain.ErrDepartmentNotFound
		}

		if err := s.empRepo.DeleteByDepartmentID(ctx, departmentID); err != nil {
			return err
		}

		var err error
		removed, err = g.RemoveAllEmployees(departmentID)
		return err
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
