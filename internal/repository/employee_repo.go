package repository

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"gorm.io/gorm"
)

// EmployeeFilter narrows employee listings. Status and Setor are
// exact-match; Busca searches the text-field whitelist.
type EmployeeFilter struct {
	Status string
	Setor  string
	Busca  string
}

// EmployeeRepository employee data access interface
type EmployeeRepository interface {
	List(filter EmployeeFilter, page, perPage int) ([]domain.Employee, int64, error)
	FindByCPF(cpf string) (*domain.Employee, error)
	Create(employee *domain.Employee) error
	UpdateFields(cpf string, fields map[string]interface{}) error
	Delete(cpf string) (int64, error)
	CountAll() (int64, error)
	Stats() (*domain.EmployeeStats, error)
	ListSectors() ([]domain.Sector, error)
	ListClassifications(cpf string) ([]domain.Classification, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) filtered(filter EmployeeFilter) *gorm.DB {
	set := &FilterSet{}
	if filter.Status != "" {
		set.Where(Equals("status", filter.Status))
	}
	if filter.Setor != "" {
		set.Where(Equals("setor", filter.Setor))
	}
	if filter.Busca != "" {
		set.MatchAny(
			DigitsContain("cpf", filter.Busca),
			Contains("nome", filter.Busca),
			Contains("email", filter.Busca),
			Contains("setor", filter.Busca),
			Contains("tipo", filter.Busca),
			Contains("status", filter.Busca),
		)
	}
	return set.Apply(r.db.Model(&domain.Employee{}))
}

// List returns one page of employees plus the filtered total, ordered by
// name for deterministic pagination
func (r *employeeRepository) List(filter EmployeeFilter, page, perPage int) ([]domain.Employee, int64, error) {
	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, classify("count employees", err)
	}

	var employees []domain.Employee
	err := r.filtered(filter).
		Order("nome").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&employees).Error
	if err != nil {
		return nil, 0, classify("list employees", err)
	}
	return employees, total, nil
}

// FindByCPF finds an employee by CPF
func (r *employeeRepository) FindByCPF(cpf string) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.Where("cpf = ?", cpf).First(&employee).Error; err != nil {
		return nil, classify("find employee", err)
	}
	return &employee, nil
}

// Create creates a new employee
func (r *employeeRepository) Create(employee *domain.Employee) error {
	return classify("create employee", r.db.Create(employee).Error)
}

// UpdateFields applies a partial update; the row must exist
func (r *employeeRepository) UpdateFields(cpf string, fields map[string]interface{}) error {
	result := r.db.Model(&domain.Employee{}).
		Where("cpf = ?", cpf).
		Updates(fields)
	if result.Error != nil {
		return classify("update employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return classify("update employee", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes an employee row, returning the affected count
func (r *employeeRepository) Delete(cpf string) (int64, error) {
	result := r.db.Where("cpf = ?", cpf).Delete(&domain.Employee{})
	if result.Error != nil {
		return 0, classify("delete employee", result.Error)
	}
	return result.RowsAffected, nil
}

// CountAll returns the unfiltered employee total
func (r *employeeRepository) CountAll() (int64, error) {
	var total int64
	if err := r.db.Model(&domain.Employee{}).Count(&total).Error; err != nil {
		return 0, classify("count employees", err)
	}
	return total, nil
}

// Stats returns the HR headline counters, matching status text
// case-insensitively as the legacy data requires
func (r *employeeRepository) Stats() (*domain.EmployeeStats, error) {
	var stats domain.EmployeeStats
	err := r.db.Model(&domain.Employee{}).
		Select(`COUNT(*) AS total,
			COUNT(CASE WHEN UPPER(status) = UPPER(?) THEN 1 END) AS ativos,
			COUNT(CASE WHEN UPPER(status) = UPPER(?) THEN 1 END) AS em_rescisao`,
			domain.EmployeeStatusActive, domain.EmployeeStatusInTermination).
		Scan(&stats).Error
	if err != nil {
		return nil, classify("employee stats", err)
	}
	return &stats, nil
}

// ListSectors returns the distinct non-null sector labels
func (r *employeeRepository) ListSectors() ([]domain.Sector, error) {
	var sectors []domain.Sector
	err := r.db.Model(&domain.Employee{}).
		Select("DISTINCT setor AS nome").
		Where("setor IS NOT NULL AND setor <> ''").
		Order("nome").
		Scan(&sectors).Error
	if err != nil {
		return nil, classify("list sectors", err)
	}
	return sectors, nil
}

// ListClassifications returns the classifications linked to an employee
func (r *employeeRepository) ListClassifications(cpf string) ([]domain.Classification, error) {
	var classifications []domain.Classification
	err := r.db.Table("funcionario_classificacao fc").
		Select("c.cod_classificacao, c.nome").
		Joins("JOIN classificacao c ON fc.classificacao_cod = c.cod_classificacao").
		Where("fc.funcionario_cpf = ?", cpf).
		Order("c.nome").
		Scan(&classifications).Error
	if err != nil {
		return nil, classify("list employee classifications", err)
	}
	return classifications, nil
}
