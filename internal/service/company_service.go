package service

import (
	"context"

	"github.com/company-sales-api/internal/domain"
	"github.com/company-sales-api/internal/dto"
	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/repository"
)

// CompanyDetails - компания с подразделениями и их сотрудниками
type CompanyDetails struct {
	Company     domain.Company
	Departments []DepartmentDetails
}

// DepartmentDetails - подразделение и его сотрудники
type DepartmentDetails struct {
	Department domain.Department
	Employees  []EmployeeDetails
}

// EmployeeDetails - сотрудник и сумма его продаж
type EmployeeDetails struct {
	Employee   domain.Employee
	TotalSales float64
}

func departmentDetails(g *graph.Graph, dept domain.Department) DepartmentDetails {
	details := DepartmentDetails{Department: dept}
	for _, e := range g.EmployeesOf(dept.ID) {
		details.Employees = append(details.Employees, EmployeeDetails{
			Employee:   e,
			TotalSales: g.TotalSales(e.ID),
		})
	}
	return details
}

// CompanyService определяет интерфейс бизнес-логики для компаний
type CompanyService interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*domain.Company, error)
	GetByID(ctx context.Context, id int64) (*CompanyDetails, error)
}

type companyService struct {
	store       *GraphStore
	companyRepo repository.CompanyRepository
}

// NewCompanyService создаёт новый экземпляр сервиса
func NewCompanyService(store *GraphStore, companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{
		store:       store,
		companyRepo: companyRepo,
	}
}

func (s *companyService) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*domain.Company, error) {
	var company domain.Company

	err := s.store.Write(func(g *graph.Graph) error {
		company = g.AddCompany(req.Name)
		if err := s.companyRepo.Create(ctx, &company); err != nil {
			_ = g.RemoveCompany(company.ID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &company, nil
}

func (s *companyService) GetByID(ctx context.Context, id int64) (*CompanyDetails, error) {
	var details *CompanyDetails

	s.store.Read(func(g *graph.Graph) {
		company, ok := g.Company(id)
		if !ok {
			return
		}
		details = &CompanyDetails{Company: company}
		for _, d := range g.DepartmentsOf(id) {
			details.Departments = append(details.Departments, departmentDetails(g, d))
		}
	})
	if details == nil {
		return nil, domain.ErrCompanyNotFound
	}

	return details, nil
}
