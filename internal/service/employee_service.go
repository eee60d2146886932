package service

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
)

// DefaultEmployeesPerPage is the employee listing page size
const DefaultEmployeesPerPage = 20

// EmployeeService handles employee operations
type EmployeeService interface {
	List(filter repository.EmployeeFilter, page, perPage int) ([]domain.Employee, *common.Pagination, error)
	Get(cpf string) (*domain.Employee, error)
	Create(req *domain.CreateEmployeeRequest) (*domain.Employee, error)
	Update(cpf string, patch *domain.EmployeePatch) (*domain.Employee, error)
	Delete(cpf string) error
	Total() (int64, error)
	Stats() (*domain.EmployeeStats, error)
	Sectors() ([]domain.Sector, error)
	Classifications(cpf string) ([]domain.Classification, error)
	Evaluations(cpf string) ([]domain.EvaluationRow, error)
	Trainings(cpf string) ([]domain.TrainingRow, error)
}

type employeeService struct {
	employeeRepo   repository.EmployeeRepository
	evaluationRepo repository.EvaluationRepository
	trainingRepo   repository.TrainingRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	evaluationRepo repository.EvaluationRepository,
	trainingRepo repository.TrainingRepository,
) EmployeeService {
	return &employeeService{
		employeeRepo:   employeeRepo,
		evaluationRepo: evaluationRepo,
		trainingRepo:   trainingRepo,
	}
}

// List returns one page of employees with pagination metadata
func (s *employeeService) List(filter repository.EmployeeFilter, page, perPage int) ([]domain.Employee, *common.Pagination, error) {
	page, perPage = common.ClampPage(page, perPage, DefaultEmployeesPerPage)

	employees, total, err := s.employeeRepo.List(filter, page, perPage)
	if err != nil {
		return nil, nil, err
	}
	return employees, common.NewPagination(page, perPage, total), nil
}

// Get returns one employee by cpf
func (s *employeeService) Get(cpf string) (*domain.Employee, error) {
	return s.employeeRepo.FindByCPF(cpf)
}

// Create registers a new employee; tipo and status fall back to the hiring
// defaults when omitted
func (s *employeeService) Create(req *domain.CreateEmployeeRequest) (*domain.Employee, error) {
	employee := &domain.Employee{
		CPF:    req.CPF,
		Nome:   req.Nome,
		Email:  req.Email,
		Setor:  req.Setor,
		CTPS:   req.CTPS,
		Tipo:   req.Tipo,
		Status: req.Status,
	}
	if employee.Tipo == "" {
		employee.Tipo = "CLT"
	}
	if employee.Status == "" {
		employee.Status = domain.EmployeeStatusActive
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Update applies a partial update and returns the updated row. The cpf is
// immutable; an empty patch is rejected before touching storage.
func (s *employeeService) Update(cpf string, patch *domain.EmployeePatch) (*domain.Employee, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, common.ErrNoFields
	}

	if err := s.employeeRepo.UpdateFields(cpf, fields); err != nil {
		return nil, err
	}
	return s.employeeRepo.FindByCPF(cpf)
}

// Delete removes an employee. The delete is blocked while the employee is
// the evaluator of any evaluation; being the evaluated subject does not
// block.
func (s *employeeService) Delete(cpf string) error {
	asEvaluator, err := s.evaluationRepo.CountByEvaluator(cpf)
	if err != nil {
		return err
	}
	if asEvaluator > 0 {
		return &common.ConflictError{
			Entity: "funcionario",
			Reason: "Funcionário possui avaliações como avaliador",
			References: map[string]int64{
				"avaliacoes_como_avaliador": asEvaluator,
			},
		}
	}

	affected, err := s.employeeRepo.Delete(cpf)
	if err != nil {
		if common.IsForeignKeyViolation(err) {
			return &common.ConflictError{
				Entity: "funcionario",
				Reason: "Funcionário possui registros vinculados",
			}
		}
		return err
	}
	if affected == 0 {
		return common.ErrEmployeeNotFound
	}
	return nil
}

// Total returns the unfiltered headcount
func (s *employeeService) Total() (int64, error) {
	return s.employeeRepo.CountAll()
}

// Stats returns the HR headline counters
func (s *employeeService) Stats() (*domain.EmployeeStats, error) {
	return s.employeeRepo.Stats()
}

// Sectors returns the distinct sector labels in use
func (s *employeeService) Sectors() ([]domain.Sector, error) {
	return s.employeeRepo.ListSectors()
}

// Classifications returns the classifications linked to an employee
func (s *employeeService) Classifications(cpf string) ([]domain.Classification, error) {
	return s.employeeRepo.ListClassifications(cpf)
}

// Evaluations returns the evaluations where the employee is the evaluated
// subject
func (s *employeeService) Evaluations(cpf string) ([]domain.EvaluationRow, error) {
	return s.evaluationRepo.List(cpf)
}

// Trainings returns the trainings the employee attended
func (s *employeeService) Trainings(cpf string) ([]domain.TrainingRow, error) {
	return s.trainingRepo.ListByEmployee(cpf)
}
