package service

import (
	"testing"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestQuestionCreate(t *testing.T) {
	t.Run("creates question with options and reloads detail", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		svc := NewQuestionService(questionRepo)

		questionRepo.On("CreateWithOptions", mock.MatchedBy(func(q *domain.Question) bool {
			return q.TextoQuestao == "Como avalia a liderança?" && q.Status == domain.QuestionStatusActive
		}), []string{"Ótima", "Boa", "Ruim"}).Return(nil)
		questionRepo.On("FindByID", mock.Anything).
			Return(&domain.QuestionDetail{TextoQuestao: "Como avalia a liderança?"}, nil)

		detail, err := svc.Create(&domain.CreateQuestionRequest{
			Texto:  "Como avalia a liderança?",
			Opcoes: []string{"Ótima", "Boa", "Ruim"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Como avalia a liderança?", detail.TextoQuestao)
		questionRepo.AssertExpectations(t)
	})
}

func TestQuestionUpdate(t *testing.T) {
	t.Run("rejects empty patch", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		svc := NewQuestionService(questionRepo)

		_, err := svc.Update(1, &domain.QuestionPatch{})

		assert.ErrorIs(t, err, common.ErrNoFields)
		questionRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
	})

	t.Run("options-only patch checks existence then replaces", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		svc := NewQuestionService(questionRepo)
		opcoes := []string{"Sim", "Não"}

		questionRepo.On("FindByID", 5).
			Return(&domain.QuestionDetail{CodQuestao: 5}, nil)
		questionRepo.On("ReplaceOptions", 5, opcoes).Return(nil)

		detail, err := svc.Update(5, &domain.QuestionPatch{Opcoes: &opcoes})

		assert.NoError(t, err)
		assert.Equal(t, 5, detail.CodQuestao)
		questionRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
		questionRepo.AssertExpectations(t)
	})

	t.Run("missing question surfaces not found", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		svc := NewQuestionService(questionRepo)
		texto := "Novo texto"

		questionRepo.On("UpdateFields", 99, map[string]interface{}{"texto_questao": "Novo texto"}).
			Return(common.ErrNotFound)

		_, err := svc.Update(99, &domain.QuestionPatch{Texto: &texto})

		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestQuestionDelete(t *testing.T) {
	t.Run("blocked by responses and questionnaire links", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		svc := NewQuestionService(questionRepo)

		questionRepo.On("CountResponses", 3).Return(int64(12), nil)
		questionRepo.On("CountQuestionnaireLinks", 3).Return(int64(2), nil)

		err := svc.Delete(3)

		var conflict *common.ConflictError
		assert.ErrorAs(t, err, &conflict)
		assert.Equal(t, int64(12), conflict.References["respostas"])
		assert.Equal(t, int64(2), conflict.References["questionarios"])
		assert.Equal(t, int64(14), conflict.TotalReferences())
		questionRepo.AssertNotCalled(t, "DeleteWithOptions", mock.Anything)
	})

	t.Run("link count alone blocks", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		svc := NewQuestionService(questionRepo)

		questionRepo.On("CountResponses", 3).Return(int64(0), nil)
		questionRepo.On("CountQuestionnaireLinks", 3).Return(int64(1), nil)

		err := svc.Delete(3)

		var conflict *common.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("unreferenced question deletes", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		svc := NewQuestionService(questionRepo)

		questionRepo.On("CountResponses", 4).Return(int64(0), nil)
		questionRepo.On("CountQuestionnaireLinks", 4).Return(int64(0), nil)
		questionRepo.On("DeleteWithOptions", 4).Return(int64(1), nil)

		err := svc.Delete(4)

		assert.NoError(t, err)
		questionRepo.AssertExpectations(t)
	})

	t.Run("zero rows affected means not found", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		svc := NewQuestionService(questionRepo)

		questionRepo.On("CountResponses", 404).Return(int64(0), nil)
		questionRepo.On("CountQuestionnaireLinks", 404).Return(int64(0), nil)
		questionRepo.On("DeleteWithOptions", 404).Return(int64(0), nil)

		err := svc.Delete(404)

		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
