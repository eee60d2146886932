package repository

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"gorm.io/gorm"
)

// TrainingRepository training and certificate data access interface
type TrainingRepository interface {
	ListTrainings() ([]domain.Training, error)
	ListByEmployee(cpf string) ([]domain.TrainingRow, error)
	ListEvaluators() ([]domain.Evaluator, error)
	FindEvaluator(cpf string) (*domain.Evaluator, error)
	ListCertificates(cpf string) ([]domain.Certificate, error)
	CreateLink(link *domain.EmployeeTraining) error
	UpdateLink(cpf string, trainingID int, certificate string) error
	DeleteLink(cpf string, trainingID int) (int64, error)
}

type trainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository creates a new TrainingRepository
func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &trainingRepository{db: db}
}

// ListTrainings returns every training, newest first
func (r *trainingRepository) ListTrainings() ([]domain.Training, error) {
	var trainings []domain.Training
	err := r.db.Order("data_realizacao DESC NULLS LAST, cod_treinamento DESC").
		Find(&trainings).Error
	if err != nil {
		return nil, classify("list trainings", err)
	}
	return trainings, nil
}

// ListByEmployee returns the trainings one employee attended, with the
// certificate issued on each link
func (r *trainingRepository) ListByEmployee(cpf string) ([]domain.TrainingRow, error) {
	var rows []domain.TrainingRow
	err := r.db.Table("funcionario_treinamento ft").
		Select(`t.cod_treinamento,
			t.nome,
			t.data_realizacao,
			t.validade,
			COALESCE(t.local, '') AS local,
			COALESCE(ft.n_certificado, '') AS n_certificado`).
		Joins("JOIN treinamento t ON ft.treinamento_cod = t.cod_treinamento").
		Where("ft.funcionario_cpf = ?", cpf).
		Order("t.data_realizacao DESC NULLS LAST").
		Scan(&rows).Error
	if err != nil {
		return nil, classify("list employee trainings", err)
	}
	return rows, nil
}

const evaluatorSelect = `f.cpf,
	f.nome,
	COALESCE(f.email, '') AS email,
	COALESCE(f.setor, '') AS setor,
	f.status,
	COUNT(ft.n_certificado) AS total_certificados,
	COALESCE(MAX(ft.n_certificado), '') AS ultimo_certificado,
	COUNT(DISTINCT ft.treinamento_cod) AS treinamentos_unicos`

func (r *trainingRepository) evaluators() *gorm.DB {
	return r.db.Table("funcionario f").
		Select(evaluatorSelect).
		Joins("JOIN funcionario_treinamento ft ON ft.funcionario_cpf = f.cpf").
		Where("UPPER(f.status) = ?", "ATIVO").
		Group("f.cpf, f.nome, f.email, f.setor, f.status")
}

// ListEvaluators returns active employees holding at least one training
// certificate
func (r *trainingRepository) ListEvaluators() ([]domain.Evaluator, error) {
	var evaluators []domain.Evaluator
	if err := r.evaluators().Order("f.nome").Scan(&evaluators).Error; err != nil {
		return nil, classify("list evaluators", err)
	}
	return evaluators, nil
}

// FindEvaluator finds one evaluator by cpf
func (r *trainingRepository) FindEvaluator(cpf string) (*domain.Evaluator, error) {
	var evaluator domain.Evaluator
	err := r.evaluators().Where("f.cpf = ?", cpf).Scan(&evaluator).Error
	if err != nil {
		return nil, classify("find evaluator", err)
	}
	if evaluator.CPF == "" {
		return nil, classify("find evaluator", gorm.ErrRecordNotFound)
	}
	return &evaluator, nil
}

// ListCertificates returns the certificates one evaluator holds
func (r *trainingRepository) ListCertificates(cpf string) ([]domain.Certificate, error) {
	var certificates []domain.Certificate
	err := r.db.Table("funcionario_treinamento ft").
		Select(`t.cod_treinamento,
			t.nome AS nome_treinamento,
			t.data_realizacao,
			t.validade,
			COALESCE(t.local, '') AS local,
			COALESCE(ft.n_certificado, '') AS n_certificado`).
		Joins("JOIN treinamento t ON ft.treinamento_cod = t.cod_treinamento").
		Where("ft.funcionario_cpf = ?", cpf).
		Order("t.data_realizacao DESC NULLS LAST").
		Scan(&certificates).Error
	if err != nil {
		return nil, classify("list certificates", err)
	}
	return certificates, nil
}

// CreateLink creates a new employee-training link
func (r *trainingRepository) CreateLink(link *domain.EmployeeTraining) error {
	return classify("create training link", r.db.Create(link).Error)
}

// UpdateLink replaces the certificate number on an existing link; both keys
// address the row
func (r *trainingRepository) UpdateLink(cpf string, trainingID int, certificate string) error {
	result := r.db.Model(&domain.EmployeeTraining{}).
		Where("funcionario_cpf = ? AND treinamento_cod = ?", cpf, trainingID).
		Update("n_certificado", certificate)
	if result.Error != nil {
		return classify("update training link", result.Error)
	}
	if result.RowsAffected == 0 {
		return classify("update training link", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteLink removes one employee-training link
func (r *trainingRepository) DeleteLink(cpf string, trainingID int) (int64, error) {
	result := r.db.Where("funcionario_cpf = ? AND treinamento_cod = ?", cpf, trainingID).
		Delete(&domain.EmployeeTraining{})
	if result.Error != nil {
		return 0, classify("delete training link", result.Error)
	}
	return result.RowsAffected, nil
}
