package service

import (
	"testing"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEvaluatorUpdateLink(t *testing.T) {
	t.Run("missing certificate rejects as no fields", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepository)
		svc := NewEvaluatorService(trainingRepo)

		err := svc.UpdateLink(&domain.EmployeeTrainingPatch{
			FuncionarioCPF: "11122233344",
			TreinamentoCod: 2,
		})

		assert.ErrorIs(t, err, common.ErrNoFields)
		trainingRepo.AssertNotCalled(t, "UpdateLink", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("replaces the certificate number", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepository)
		svc := NewEvaluatorService(trainingRepo)
		cert := "CERT-2026-01"

		trainingRepo.On("UpdateLink", "11122233344", 2, cert).Return(nil)

		err := svc.UpdateLink(&domain.EmployeeTrainingPatch{
			FuncionarioCPF: "11122233344",
			TreinamentoCod: 2,
			NCertificado:   &cert,
		})

		assert.NoError(t, err)
		trainingRepo.AssertExpectations(t)
	})
}

func TestEvaluatorDeleteLink(t *testing.T) {
	t.Run("zero rows affected means not found", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepository)
		svc := NewEvaluatorService(trainingRepo)

		trainingRepo.On("DeleteLink", "11122233344", 9).Return(int64(0), nil)

		err := svc.DeleteLink("11122233344", 9)

		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("removes an existing link", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepository)
		svc := NewEvaluatorService(trainingRepo)

		trainingRepo.On("DeleteLink", "11122233344", 2).Return(int64(1), nil)

		err := svc.DeleteLink("11122233344", 2)

		assert.NoError(t, err)
	})
}
