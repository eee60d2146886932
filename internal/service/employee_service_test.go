package service

import (
	"testing"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEmployeeService() (*MockEmployeeRepository, *MockEvaluationRepository, *MockTrainingRepository, EmployeeService) {
	employeeRepo := new(MockEmployeeRepository)
	evaluationRepo := new(MockEvaluationRepository)
	trainingRepo := new(MockTrainingRepository)
	return employeeRepo, evaluationRepo, trainingRepo,
		NewEmployeeService(employeeRepo, evaluationRepo, trainingRepo)
}

func TestEmployeeList(t *testing.T) {
	t.Run("clamps page and builds pagination meta", func(t *testing.T) {
		employeeRepo, _, _, svc := newEmployeeService()
		employeeRepo.On("List", repository.EmployeeFilter{}, 1, DefaultEmployeesPerPage).
			Return([]domain.Employee{{CPF: "11122233344", Nome: "Ana"}}, int64(45), nil)

		employees, meta, err := svc.List(repository.EmployeeFilter{}, 0, -5)

		assert.NoError(t, err)
		assert.Len(t, employees, 1)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, int64(45), meta.Total)
		assert.Equal(t, int64(3), meta.TotalPages)
		assert.True(t, meta.HasNext)
		assert.False(t, meta.HasPrev)
		employeeRepo.AssertExpectations(t)
	})

	t.Run("caps oversized per_page", func(t *testing.T) {
		employeeRepo, _, _, svc := newEmployeeService()
		employeeRepo.On("List", repository.EmployeeFilter{}, 1, common.MaxPerPage).
			Return([]domain.Employee{}, int64(0), nil)

		_, meta, err := svc.List(repository.EmployeeFilter{}, 1, 99999)

		assert.NoError(t, err)
		assert.Equal(t, common.MaxPerPage, meta.PerPage)
	})
}

func TestEmployeeCreate(t *testing.T) {
	t.Run("applies hiring defaults", func(t *testing.T) {
		employeeRepo, _, _, svc := newEmployeeService()
		employeeRepo.On("Create", mock.MatchedBy(func(e *domain.Employee) bool {
			return e.Tipo == "CLT" && e.Status == domain.EmployeeStatusActive
		})).Return(nil)

		employee, err := svc.Create(&domain.CreateEmployeeRequest{
			Nome:  "Bruno",
			CPF:   "22233344455",
			Email: "bruno@empresa.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "CLT", employee.Tipo)
		assert.Equal(t, domain.EmployeeStatusActive, employee.Status)
	})

	t.Run("keeps explicit tipo and status", func(t *testing.T) {
		employeeRepo, _, _, svc := newEmployeeService()
		employeeRepo.On("Create", mock.Anything).Return(nil)

		employee, err := svc.Create(&domain.CreateEmployeeRequest{
			Nome:   "Carla",
			CPF:    "33344455566",
			Email:  "carla@empresa.com",
			Tipo:   "PJ",
			Status: domain.EmployeeStatusInTermination,
		})

		assert.NoError(t, err)
		assert.Equal(t, "PJ", employee.Tipo)
		assert.Equal(t, domain.EmployeeStatusInTermination, employee.Status)
	})
}

func TestEmployeeUpdate(t *testing.T) {
	t.Run("rejects empty patch without touching storage", func(t *testing.T) {
		employeeRepo, _, _, svc := newEmployeeService()

		_, err := svc.Update("11122233344", &domain.EmployeePatch{})

		assert.ErrorIs(t, err, common.ErrNoFields)
		employeeRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
	})

	t.Run("updates supplied fields and reloads", func(t *testing.T) {
		employeeRepo, _, _, svc := newEmployeeService()
		novoSetor := "Financeiro"
		employeeRepo.On("UpdateFields", "11122233344", map[string]interface{}{"setor": "Financeiro"}).
			Return(nil)
		employeeRepo.On("FindByCPF", "11122233344").
			Return(&domain.Employee{CPF: "11122233344", Setor: "Financeiro"}, nil)

		employee, err := svc.Update("11122233344", &domain.EmployeePatch{Setor: &novoSetor})

		assert.NoError(t, err)
		assert.Equal(t, "Financeiro", employee.Setor)
		employeeRepo.AssertExpectations(t)
	})
}

func TestEmployeeDelete(t *testing.T) {
	t.Run("blocked while employee evaluated others", func(t *testing.T) {
		employeeRepo, evaluationRepo, _, svc := newEmployeeService()
		evaluationRepo.On("CountByEvaluator", "11122233344").Return(int64(3), nil)

		err := svc.Delete("11122233344")

		var conflict *common.ConflictError
		assert.ErrorAs(t, err, &conflict)
		assert.Equal(t, int64(3), conflict.References["avaliacoes_como_avaliador"])
		assert.Equal(t, int64(3), conflict.TotalReferences())
		employeeRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("being evaluated does not block", func(t *testing.T) {
		employeeRepo, evaluationRepo, _, svc := newEmployeeService()
		evaluationRepo.On("CountByEvaluator", "11122233344").Return(int64(0), nil)
		employeeRepo.On("Delete", "11122233344").Return(int64(1), nil)

		err := svc.Delete("11122233344")

		assert.NoError(t, err)
		employeeRepo.AssertExpectations(t)
	})

	t.Run("zero rows affected means not found", func(t *testing.T) {
		employeeRepo, evaluationRepo, _, svc := newEmployeeService()
		evaluationRepo.On("CountByEvaluator", "00000000000").Return(int64(0), nil)
		employeeRepo.On("Delete", "00000000000").Return(int64(0), nil)

		err := svc.Delete("00000000000")

		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestEmployeeSubResources(t *testing.T) {
	t.Run("evaluations delegate with the evaluated filter", func(t *testing.T) {
		_, evaluationRepo, _, svc := newEmployeeService()
		evaluationRepo.On("List", "11122233344").
			Return([]domain.EvaluationRow{{ID: 7}}, nil)

		rows, err := svc.Evaluations("11122233344")

		assert.NoError(t, err)
		assert.Equal(t, 7, rows[0].ID)
	})

	t.Run("trainings delegate to the training repository", func(t *testing.T) {
		_, _, trainingRepo, svc := newEmployeeService()
		trainingRepo.On("ListByEmployee", "11122233344").
			Return([]domain.TrainingRow{{CodTreinamento: 2, NCertificado: "CERT-9"}}, nil)

		rows, err := svc.Trainings("11122233344")

		assert.NoError(t, err)
		assert.Equal(t, "CERT-9", rows[0].NCertificado)
	})
}
