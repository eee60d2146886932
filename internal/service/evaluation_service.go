package service

import (
	"time"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
)

// EvaluationService handles evaluation operations
type EvaluationService interface {
	List(evaluatedCPF string) ([]domain.EvaluationRow, error)
	Get(id int) (*domain.EvaluationDetail, error)
	Create(req *domain.CreateEvaluationRequest) (*domain.Evaluation, error)
	UpdateStatus(id int, patch *domain.EvaluationStatusPatch) (*domain.EvaluationDetail, error)
	UpdateConfig(id int, patch *domain.EvaluationConfigPatch) (*domain.EvaluationDetail, error)
	Delete(id int) error
	SaveResponse(req *domain.SaveResponseRequest) (*domain.Response, error)
	ResponsesByQuestion(questionID int) ([]domain.OptionTally, error)
	ResponsesByQuestionnaire(questionnaireID int) ([]domain.OptionTally, error)
	ResponsesByEvaluation(evaluationID int) ([]domain.OptionTally, error)
}

type evaluationService struct {
	evaluationRepo repository.EvaluationRepository
	dashboardRepo  repository.DashboardRepository
}

// NewEvaluationService creates a new EvaluationService
func NewEvaluationService(
	evaluationRepo repository.EvaluationRepository,
	dashboardRepo repository.DashboardRepository,
) EvaluationService {
	return &evaluationService{
		evaluationRepo: evaluationRepo,
		dashboardRepo:  dashboardRepo,
	}
}

// List returns evaluations, optionally narrowed to one evaluated employee
func (s *evaluationService) List(evaluatedCPF string) ([]domain.EvaluationRow, error) {
	return s.evaluationRepo.List(evaluatedCPF)
}

// Get returns one evaluation with its responses
func (s *evaluationService) Get(id int) (*domain.EvaluationDetail, error) {
	return s.evaluationRepo.FindByID(id)
}

// Create registers an evaluation. An employee never evaluates their own
// exit; the timestamp is set server-side.
func (s *evaluationService) Create(req *domain.CreateEvaluationRequest) (*domain.Evaluation, error) {
	if req.AvaliadoCPF == req.AvaliadorCPF {
		return nil, common.NewValidationError("Avaliado e avaliador devem ser pessoas diferentes")
	}

	evaluation := &domain.Evaluation{
		Local:           req.Local,
		DataCompleta:    time.Now(),
		ObservacaoGeral: req.ObservacaoGeral,
		RatingGeral:     req.RatingGeral,
		AvaliadoCPF:     req.AvaliadoCPF,
		AvaliadorCPF:    req.AvaliadorCPF,
		QuestionarioCod: req.QuestionarioCod,
	}
	if err := s.evaluationRepo.Create(evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

// UpdateStatus mutates rating and general note only
func (s *evaluationService) UpdateStatus(id int, patch *domain.EvaluationStatusPatch) (*domain.EvaluationDetail, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, common.ErrNoFields
	}

	if err := s.evaluationRepo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.evaluationRepo.FindByID(id)
}

// UpdateConfig mutates the configuration fields; the self-evaluation rule
// holds whenever both sides land in the patch
func (s *evaluationService) UpdateConfig(id int, patch *domain.EvaluationConfigPatch) (*domain.EvaluationDetail, error) {
	if patch.AvaliadoCPF != nil && patch.AvaliadorCPF != nil &&
		*patch.AvaliadoCPF == *patch.AvaliadorCPF {
		return nil, common.NewValidationError("Avaliado e avaliador devem ser pessoas diferentes")
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, common.ErrNoFields
	}

	if err := s.evaluationRepo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.evaluationRepo.FindByID(id)
}

// Delete removes an evaluation, cascading to its responses
func (s *evaluationService) Delete(id int) error {
	affected, err := s.evaluationRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrEvaluationNotFound
	}
	return nil
}

// SaveResponse records one choice; a repeated (avaliacao, questao) pair
// overwrites the previously chosen option
func (s *evaluationService) SaveResponse(req *domain.SaveResponseRequest) (*domain.Response, error) {
	return s.evaluationRepo.SaveResponse(req.AvaliacaoCod, req.QuestaoCod, req.OpcaoCod)
}

// ResponsesByQuestion tallies responses across the option universe of one
// question
func (s *evaluationService) ResponsesByQuestion(questionID int) ([]domain.OptionTally, error) {
	return s.dashboardRepo.OptionTallies(questionID)
}

// ResponsesByQuestionnaire tallies responses across every question linked
// to a questionnaire
func (s *evaluationService) ResponsesByQuestionnaire(questionnaireID int) ([]domain.OptionTally, error) {
	return s.dashboardRepo.OptionTalliesForQuestionnaire(questionnaireID)
}

// ResponsesByEvaluation resolves the evaluation's questionnaire and
// delegates to the questionnaire tally
func (s *evaluationService) ResponsesByEvaluation(evaluationID int) ([]domain.OptionTally, error) {
	questionnaireID, err := s.evaluationRepo.QuestionnaireOf(evaluationID)
	if err != nil {
		return nil, err
	}
	return s.dashboardRepo.OptionTalliesForQuestionnaire(questionnaireID)
}
