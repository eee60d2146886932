package service

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
)

// DefaultQuestionsPerPage is the question listing page size
const DefaultQuestionsPerPage = 10

// QuestionService handles question operations
type QuestionService interface {
	List(filter repository.QuestionFilter, page, perPage int) ([]domain.QuestionDetail, *common.Pagination, error)
	Get(id int) (*domain.QuestionDetail, error)
	Create(req *domain.CreateQuestionRequest) (*domain.QuestionDetail, error)
	Update(id int, patch *domain.QuestionPatch) (*domain.QuestionDetail, error)
	Delete(id int) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

// List returns one page of questions with pagination metadata
func (s *questionService) List(filter repository.QuestionFilter, page, perPage int) ([]domain.QuestionDetail, *common.Pagination, error) {
	page, perPage = common.ClampPage(page, perPage, DefaultQuestionsPerPage)

	questions, total, err := s.questionRepo.List(filter, page, perPage)
	if err != nil {
		return nil, nil, err
	}
	return questions, common.NewPagination(page, perPage, total), nil
}

// Get returns one question with its options and usage count
func (s *questionService) Get(id int) (*domain.QuestionDetail, error) {
	return s.questionRepo.FindByID(id)
}

// Create registers a question with its option set in one transaction
func (s *questionService) Create(req *domain.CreateQuestionRequest) (*domain.QuestionDetail, error) {
	question := &domain.Question{
		TextoQuestao: req.Texto,
		Status:       req.Status,
	}
	if question.Status == "" {
		question.Status = domain.QuestionStatusActive
	}

	if err := s.questionRepo.CreateWithOptions(question, req.Opcoes); err != nil {
		return nil, err
	}
	return s.questionRepo.FindByID(question.CodQuestao)
}

// Update applies a partial update. A non-nil option list replaces the
// option set wholesale; an empty patch is rejected.
func (s *questionService) Update(id int, patch *domain.QuestionPatch) (*domain.QuestionDetail, error) {
	fields := patch.Fields()
	if len(fields) == 0 && patch.Opcoes == nil {
		return nil, common.ErrNoFields
	}

	if len(fields) > 0 {
		if err := s.questionRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	} else {
		// Options-only patch; confirm the question exists first
		if _, err := s.questionRepo.FindByID(id); err != nil {
			return nil, err
		}
	}

	if patch.Opcoes != nil {
		if err := s.questionRepo.ReplaceOptions(id, *patch.Opcoes); err != nil {
			return nil, err
		}
	}
	return s.questionRepo.FindByID(id)
}

// Delete removes a question and its options. The delete is blocked while
// responses reference the question or questionnaires still link it; both
// counts come back on the conflict.
func (s *questionService) Delete(id int) error {
	responses, err := s.questionRepo.CountResponses(id)
	if err != nil {
		return err
	}
	links, err := s.questionRepo.CountQuestionnaireLinks(id)
	if err != nil {
		return err
	}
	if responses > 0 || links > 0 {
		return &common.ConflictError{
			Entity: "questao",
			Reason: "Pergunta possui registros vinculados",
			References: map[string]int64{
				"respostas":     responses,
				"questionarios": links,
			},
		}
	}

	affected, err := s.questionRepo.DeleteWithOptions(id)
	if err != nil {
		if common.IsForeignKeyViolation(err) {
			return &common.ConflictError{
				Entity: "questao",
				Reason: "Pergunta possui registros vinculados",
			}
		}
		return err
	}
	if affected == 0 {
		return common.ErrQuestionNotFound
	}
	return nil
}
