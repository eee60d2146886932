package service

import (
	"testing"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEvaluationService() (*MockEvaluationRepository, *MockDashboardRepository, EvaluationService) {
	evaluationRepo := new(MockEvaluationRepository)
	dashboardRepo := new(MockDashboardRepository)
	return evaluationRepo, dashboardRepo,
		NewEvaluationService(evaluationRepo, dashboardRepo)
}

func TestEvaluationCreate(t *testing.T) {
	t.Run("rejects self-evaluation", func(t *testing.T) {
		evaluationRepo, _, svc := newEvaluationService()

		_, err := svc.Create(&domain.CreateEvaluationRequest{
			AvaliadoCPF:     "11122233344",
			AvaliadorCPF:    "11122233344",
			QuestionarioCod: 1,
		})

		var validation *common.ValidationError
		assert.ErrorAs(t, err, &validation)
		evaluationRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("sets the timestamp server-side", func(t *testing.T) {
		evaluationRepo, _, svc := newEvaluationService()
		evaluationRepo.On("Create", mock.MatchedBy(func(e *domain.Evaluation) bool {
			return !e.DataCompleta.IsZero() && e.AvaliadoCPF == "11122233344"
		})).Return(nil)

		evaluation, err := svc.Create(&domain.CreateEvaluationRequest{
			AvaliadoCPF:     "11122233344",
			AvaliadorCPF:    "55566677788",
			QuestionarioCod: 1,
		})

		assert.NoError(t, err)
		assert.False(t, evaluation.DataCompleta.IsZero())
		evaluationRepo.AssertExpectations(t)
	})
}

func TestEvaluationUpdateStatus(t *testing.T) {
	t.Run("rejects empty patch", func(t *testing.T) {
		evaluationRepo, _, svc := newEvaluationService()

		_, err := svc.UpdateStatus(1, &domain.EvaluationStatusPatch{})

		assert.ErrorIs(t, err, common.ErrNoFields)
		evaluationRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
	})

	t.Run("writes rating and note", func(t *testing.T) {
		evaluationRepo, _, svc := newEvaluationService()
		rating := 4.5
		nota := "Desligamento tranquilo"

		evaluationRepo.On("UpdateFields", 1, map[string]interface{}{
			"rating_geral":     4.5,
			"observacao_geral": "Desligamento tranquilo",
		}).Return(nil)
		evaluationRepo.On("FindByID", 1).
			Return(&domain.EvaluationDetail{}, nil)

		_, err := svc.UpdateStatus(1, &domain.EvaluationStatusPatch{
			RatingGeral:     &rating,
			ObservacaoGeral: &nota,
		})

		assert.NoError(t, err)
		evaluationRepo.AssertExpectations(t)
	})
}

func TestEvaluationUpdateConfig(t *testing.T) {
	t.Run("rejects patch making avaliado equal avaliador", func(t *testing.T) {
		evaluationRepo, _, svc := newEvaluationService()
		cpf := "11122233344"

		_, err := svc.UpdateConfig(1, &domain.EvaluationConfigPatch{
			AvaliadoCPF:  &cpf,
			AvaliadorCPF: &cpf,
		})

		var validation *common.ValidationError
		assert.ErrorAs(t, err, &validation)
		evaluationRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty patch", func(t *testing.T) {
		_, _, svc := newEvaluationService()

		_, err := svc.UpdateConfig(1, &domain.EvaluationConfigPatch{})

		assert.ErrorIs(t, err, common.ErrNoFields)
	})
}

func TestEvaluationDelete(t *testing.T) {
	t.Run("zero rows affected means not found", func(t *testing.T) {
		evaluationRepo, _, svc := newEvaluationService()
		evaluationRepo.On("Delete", 404).Return(int64(0), nil)

		err := svc.Delete(404)

		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestSaveResponse(t *testing.T) {
	t.Run("delegates the upsert", func(t *testing.T) {
		evaluationRepo, _, svc := newEvaluationService()
		evaluationRepo.On("SaveResponse", 10, 20, 30).
			Return(&domain.Response{CodResposta: 1, AvaliacaoCod: 10, QuestaoCod: 20, OpcaoCod: 30}, nil)

		response, err := svc.SaveResponse(&domain.SaveResponseRequest{
			AvaliacaoCod: 10,
			QuestaoCod:   20,
			OpcaoCod:     30,
		})

		assert.NoError(t, err)
		assert.Equal(t, 30, response.OpcaoCod)
	})
}

func TestResponsesByEvaluation(t *testing.T) {
	t.Run("resolves the questionnaire then tallies", func(t *testing.T) {
		evaluationRepo, dashboardRepo, svc := newEvaluationService()
		evaluationRepo.On("QuestionnaireOf", 7).Return(3, nil)
		dashboardRepo.On("OptionTalliesForQuestionnaire", 3).
			Return([]domain.OptionTally{{QuestaoID: 1, Quantidade: 2}}, nil)

		tallies, err := svc.ResponsesByEvaluation(7)

		assert.NoError(t, err)
		assert.Len(t, tallies, 1)
		dashboardRepo.AssertExpectations(t)
	})

	t.Run("missing evaluation short-circuits", func(t *testing.T) {
		evaluationRepo, dashboardRepo, svc := newEvaluationService()
		evaluationRepo.On("QuestionnaireOf", 404).Return(0, common.ErrNotFound)

		_, err := svc.ResponsesByEvaluation(404)

		assert.ErrorIs(t, err, common.ErrNotFound)
		dashboardRepo.AssertNotCalled(t, "OptionTalliesForQuestionnaire", mock.Anything)
	})
}
