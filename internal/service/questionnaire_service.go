package service

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
)

// QuestionnaireService handles questionnaire operations
type QuestionnaireService interface {
	List() ([]domain.QuestionnaireSummary, error)
	Get(id int) (*domain.QuestionnaireDetail, error)
	Create(req *domain.CreateQuestionnaireRequest) (*domain.QuestionnaireDetail, error)
	Update(id int, patch *domain.QuestionnairePatch) (*domain.QuestionnaireDetail, error)
	Delete(id int) error
	Classifications() ([]domain.Classification, error)
	Categories() ([]domain.Category, error)
}

type questionnaireService struct {
	questionnaireRepo  repository.QuestionnaireRepository
	classificationRepo repository.ClassificationRepository
}

// NewQuestionnaireService creates a new QuestionnaireService
func NewQuestionnaireService(
	questionnaireRepo repository.QuestionnaireRepository,
	classificationRepo repository.ClassificationRepository,
) QuestionnaireService {
	return &questionnaireService{
		questionnaireRepo:  questionnaireRepo,
		classificationRepo: classificationRepo,
	}
}

// List returns every questionnaire with aggregate counts
func (s *questionnaireService) List() ([]domain.QuestionnaireSummary, error) {
	return s.questionnaireRepo.ListSummaries()
}

// Get returns one questionnaire with its linked questions
func (s *questionnaireService) Get(id int) (*domain.QuestionnaireDetail, error) {
	return s.questionnaireRepo.FindByID(id)
}

// Create registers a questionnaire and links the submitted questions
func (s *questionnaireService) Create(req *domain.CreateQuestionnaireRequest) (*domain.QuestionnaireDetail, error) {
	questionnaire := &domain.Questionnaire{
		Nome:             req.Nome,
		Tipo:             req.Tipo,
		Status:           req.Status,
		ClassificacaoCod: req.ClassificacaoCod,
	}
	if questionnaire.Status == "" {
		questionnaire.Status = "Ativo"
	}

	if err := s.questionnaireRepo.Create(questionnaire); err != nil {
		return nil, err
	}
	if len(req.QuestoesIDs) > 0 {
		if err := s.questionnaireRepo.ReplaceLinks(questionnaire.CodQuestionario, req.QuestoesIDs); err != nil {
			return nil, err
		}
	}
	return s.questionnaireRepo.FindByID(questionnaire.CodQuestionario)
}

// Update applies a partial update. A non-nil question id list replaces the
// link set wholesale; an empty patch is rejected.
func (s *questionnaireService) Update(id int, patch *domain.QuestionnairePatch) (*domain.QuestionnaireDetail, error) {
	fields := patch.Fields()
	if len(fields) == 0 && patch.QuestoesIDs == nil {
		return nil, common.ErrNoFields
	}

	if len(fields) > 0 {
		if err := s.questionnaireRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.questionnaireRepo.FindByID(id); err != nil {
			return nil, err
		}
	}

	if patch.QuestoesIDs != nil {
		if err := s.questionnaireRepo.ReplaceLinks(id, *patch.QuestoesIDs); err != nil {
			return nil, err
		}
	}
	return s.questionnaireRepo.FindByID(id)
}

// Delete removes a questionnaire and its question links. The delete is
// blocked while evaluations were applied with it.
func (s *questionnaireService) Delete(id int) error {
	evaluations, err := s.questionnaireRepo.CountEvaluations(id)
	if err != nil {
		return err
	}
	if evaluations > 0 {
		return &common.ConflictError{
			Entity: "questionario",
			Reason: "Questionário possui avaliações aplicadas",
			References: map[string]int64{
				"avaliacoes": evaluations,
			},
		}
	}

	affected, err := s.questionnaireRepo.DeleteWithLinks(id)
	if err != nil {
		if common.IsForeignKeyViolation(err) {
			return &common.ConflictError{
				Entity: "questionario",
				Reason: "Questionário possui registros vinculados",
			}
		}
		return err
	}
	if affected == 0 {
		return common.ErrQuestionnaireNotFound
	}
	return nil
}

// Classifications returns the questionnaire taxonomy
func (s *questionnaireService) Classifications() ([]domain.Classification, error) {
	return s.classificationRepo.List()
}

// Categories returns the same taxonomy under the legacy category shape
func (s *questionnaireService) Categories() ([]domain.Category, error) {
	classifications, err := s.classificationRepo.List()
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(classifications))
	for _, cl := range classifications {
		categories = append(categories, domain.Category{
			ID:        cl.CodClassificacao,
			Nome:      cl.Nome,
			Descricao: cl.Nome,
			Ativo:     true,
		})
	}
	return categories, nil
}
