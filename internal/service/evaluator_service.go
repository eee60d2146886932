package service

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
)

// EvaluatorService handles evaluator and training operations
type EvaluatorService interface {
	List() ([]domain.Evaluator, error)
	Get(cpf string) (*domain.Evaluator, error)
	Certificates(cpf string) ([]domain.Certificate, error)
	Trainings() ([]domain.Training, error)
	CreateLink(link *domain.EmployeeTraining) (*domain.EmployeeTraining, error)
	UpdateLink(patch *domain.EmployeeTrainingPatch) error
	DeleteLink(cpf string, trainingID int) error
}

type evaluatorService struct {
	trainingRepo repository.TrainingRepository
}

// NewEvaluatorService creates a new EvaluatorService
func NewEvaluatorService(trainingRepo repository.TrainingRepository) EvaluatorService {
	return &evaluatorService{trainingRepo: trainingRepo}
}

// List returns active employees holding at least one training certificate
func (s *evaluatorService) List() ([]domain.Evaluator, error) {
	return s.trainingRepo.ListEvaluators()
}

// Get returns one evaluator by cpf
func (s *evaluatorService) Get(cpf string) (*domain.Evaluator, error) {
	return s.trainingRepo.FindEvaluator(cpf)
}

// Certificates returns the certificates one evaluator holds
func (s *evaluatorService) Certificates(cpf string) ([]domain.Certificate, error) {
	return s.trainingRepo.ListCertificates(cpf)
}

// Trainings returns every registered training
func (s *evaluatorService) Trainings() ([]domain.Training, error) {
	return s.trainingRepo.ListTrainings()
}

// CreateLink qualifies an employee on a training
func (s *evaluatorService) CreateLink(link *domain.EmployeeTraining) (*domain.EmployeeTraining, error) {
	if err := s.trainingRepo.CreateLink(link); err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateLink replaces the certificate number on an existing qualification
func (s *evaluatorService) UpdateLink(patch *domain.EmployeeTrainingPatch) error {
	if patch.NCertificado == nil {
		return common.ErrNoFields
	}
	return s.trainingRepo.UpdateLink(patch.FuncionarioCPF, patch.TreinamentoCod, *patch.NCertificado)
}

// DeleteLink removes a qualification; both keys address the row
func (s *evaluatorService) DeleteLink(cpf string, trainingID int) error {
	affected, err := s.trainingRepo.DeleteLink(cpf, trainingID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
