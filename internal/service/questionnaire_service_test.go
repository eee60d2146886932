package service

import (
	"testing"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newQuestionnaireService() (*MockQuestionnaireRepository, *MockClassificationRepository, QuestionnaireService) {
	questionnaireRepo := new(MockQuestionnaireRepository)
	classificationRepo := new(MockClassificationRepository)
	return questionnaireRepo, classificationRepo,
		NewQuestionnaireService(questionnaireRepo, classificationRepo)
}

func TestQuestionnaireCreate(t *testing.T) {
	t.Run("links submitted questions after the insert", func(t *testing.T) {
		questionnaireRepo, _, svc := newQuestionnaireService()

		questionnaireRepo.On("Create", mock.MatchedBy(func(q *domain.Questionnaire) bool {
			return q.Nome == "Desligamento padrão" && q.Status == "Ativo"
		})).Return(nil)
		questionnaireRepo.On("ReplaceLinks", mock.Anything, []int{1, 2, 3}).Return(nil)
		questionnaireRepo.On("FindByID", mock.Anything).
			Return(&domain.QuestionnaireDetail{Titulo: "Desligamento padrão"}, nil)

		detail, err := svc.Create(&domain.CreateQuestionnaireRequest{
			Nome:             "Desligamento padrão",
			ClassificacaoCod: 1,
			QuestoesIDs:      []int{1, 2, 3},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Desligamento padrão", detail.Titulo)
		questionnaireRepo.AssertExpectations(t)
	})

	t.Run("no questions means no link call", func(t *testing.T) {
		questionnaireRepo, _, svc := newQuestionnaireService()

		questionnaireRepo.On("Create", mock.Anything).Return(nil)
		questionnaireRepo.On("FindByID", mock.Anything).
			Return(&domain.QuestionnaireDetail{}, nil)

		_, err := svc.Create(&domain.CreateQuestionnaireRequest{
			Nome:             "Vazio",
			ClassificacaoCod: 1,
		})

		assert.NoError(t, err)
		questionnaireRepo.AssertNotCalled(t, "ReplaceLinks", mock.Anything, mock.Anything)
	})
}

func TestQuestionnaireUpdate(t *testing.T) {
	t.Run("rejects empty patch", func(t *testing.T) {
		questionnaireRepo, _, svc := newQuestionnaireService()

		_, err := svc.Update(1, &domain.QuestionnairePatch{})

		assert.ErrorIs(t, err, common.ErrNoFields)
		questionnaireRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
	})

	t.Run("replaces link set wholesale", func(t *testing.T) {
		questionnaireRepo, _, svc := newQuestionnaireService()
		ids := []int{4, 5}

		questionnaireRepo.On("FindByID", 2).
			Return(&domain.QuestionnaireDetail{ID: 2}, nil)
		questionnaireRepo.On("ReplaceLinks", 2, ids).Return(nil)

		detail, err := svc.Update(2, &domain.QuestionnairePatch{QuestoesIDs: &ids})

		assert.NoError(t, err)
		assert.Equal(t, 2, detail.ID)
		questionnaireRepo.AssertExpectations(t)
	})
}

func TestQuestionnaireDelete(t *testing.T) {
	t.Run("blocked while evaluations were applied", func(t *testing.T) {
		questionnaireRepo, _, svc := newQuestionnaireService()
		questionnaireRepo.On("CountEvaluations", 9).Return(int64(5), nil)

		err := svc.Delete(9)

		var conflict *common.ConflictError
		assert.ErrorAs(t, err, &conflict)
		assert.Equal(t, int64(5), conflict.References["avaliacoes"])
		questionnaireRepo.AssertNotCalled(t, "DeleteWithLinks", mock.Anything)
	})

	t.Run("unused questionnaire deletes with its links", func(t *testing.T) {
		questionnaireRepo, _, svc := newQuestionnaireService()
		questionnaireRepo.On("CountEvaluations", 9).Return(int64(0), nil)
		questionnaireRepo.On("DeleteWithLinks", 9).Return(int64(1), nil)

		err := svc.Delete(9)

		assert.NoError(t, err)
		questionnaireRepo.AssertExpectations(t)
	})

	t.Run("zero rows affected means not found", func(t *testing.T) {
		questionnaireRepo, _, svc := newQuestionnaireService()
		questionnaireRepo.On("CountEvaluations", 404).Return(int64(0), nil)
		questionnaireRepo.On("DeleteWithLinks", 404).Return(int64(0), nil)

		err := svc.Delete(404)

		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestQuestionnaireClassifications(t *testing.T) {
	t.Run("delegates to the classification repository", func(t *testing.T) {
		_, classificationRepo, svc := newQuestionnaireService()
		classificationRepo.On("List").
			Return([]domain.Classification{{CodClassificacao: 1, Nome: "Geral"}}, nil)

		classifications, err := svc.Classifications()

		assert.NoError(t, err)
		assert.Equal(t, "Geral", classifications[0].Nome)
	})
}
