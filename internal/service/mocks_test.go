package service

import (
	"time"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) List(filter repository.EmployeeFilter, page, perPage int) ([]domain.Employee, int64, error) {
	args := m.Called(filter, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeRepository) FindByCPF(cpf string) (*domain.Employee, error) {
	args := m.Called(cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Create(employee *domain.Employee) error {
	args := m.Called(employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateFields(cpf string, fields map[string]interface{}) error {
	args := m.Called(cpf, fields)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(cpf string) (int64, error) {
	args := m.Called(cpf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) Stats() (*domain.EmployeeStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeStats), args.Error(1)
}

func (m *MockEmployeeRepository) ListSectors() ([]domain.Sector, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sector), args.Error(1)
}

func (m *MockEmployeeRepository) ListClassifications(cpf string) ([]domain.Classification, error) {
	args := m.Called(cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Classification), args.Error(1)
}

// MockEvaluationRepository is a mock implementation of EvaluationRepository
type MockEvaluationRepository struct {
	mock.Mock
}

func (m *MockEvaluationRepository) List(evaluatedCPF string) ([]domain.EvaluationRow, error) {
	args := m.Called(evaluatedCPF)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EvaluationRow), args.Error(1)
}

func (m *MockEvaluationRepository) FindByID(id int) (*domain.EvaluationDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvaluationDetail), args.Error(1)
}

func (m *MockEvaluationRepository) ListResponses(evaluationID int) ([]domain.ResponseRow, error) {
	args := m.Called(evaluationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResponseRow), args.Error(1)
}

func (m *MockEvaluationRepository) Create(evaluation *domain.Evaluation) error {
	args := m.Called(evaluation)
	return args.Error(0)
}

func (m *MockEvaluationRepository) UpdateFields(id int, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockEvaluationRepository) Delete(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEvaluationRepository) SaveResponse(evaluationID, questionID, optionID int) (*domain.Response, error) {
	args := m.Called(evaluationID, questionID, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Response), args.Error(1)
}

func (m *MockEvaluationRepository) CountByEvaluator(cpf string) (int64, error) {
	args := m.Called(cpf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEvaluationRepository) QuestionnaireOf(evaluationID int) (int, error) {
	args := m.Called(evaluationID)
	return args.Int(0), args.Error(1)
}

// MockTrainingRepository is a mock implementation of TrainingRepository
type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) ListTrainings() ([]domain.Training, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Training), args.Error(1)
}

func (m *MockTrainingRepository) ListByEmployee(cpf string) ([]domain.TrainingRow, error) {
	args := m.Called(cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainingRow), args.Error(1)
}

func (m *MockTrainingRepository) ListEvaluators() ([]domain.Evaluator, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evaluator), args.Error(1)
}

func (m *MockTrainingRepository) FindEvaluator(cpf string) (*domain.Evaluator, error) {
	args := m.Called(cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evaluator), args.Error(1)
}

func (m *MockTrainingRepository) ListCertificates(cpf string) ([]domain.Certificate, error) {
	args := m.Called(cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockTrainingRepository) CreateLink(link *domain.EmployeeTraining) error {
	args := m.Called(link)
	return args.Error(0)
}

func (m *MockTrainingRepository) UpdateLink(cpf string, trainingID int, certificate string) error {
	args := m.Called(cpf, trainingID, certificate)
	return args.Error(0)
}

func (m *MockTrainingRepository) DeleteLink(cpf string, trainingID int) (int64, error) {
	args := m.Called(cpf, trainingID)
	return args.Get(0).(int64), args.Error(1)
}

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) List(filter repository.QuestionFilter, page, perPage int) ([]domain.QuestionDetail, int64, error) {
	args := m.Called(filter, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.QuestionDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuestionRepository) FindByID(id int) (*domain.QuestionDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestionDetail), args.Error(1)
}

func (m *MockQuestionRepository) CreateWithOptions(question *domain.Question, optionTexts []string) error {
	args := m.Called(question, optionTexts)
	return args.Error(0)
}

func (m *MockQuestionRepository) UpdateFields(id int, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockQuestionRepository) ReplaceOptions(questionID int, optionTexts []string) error {
	args := m.Called(questionID, optionTexts)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteWithOptions(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) CountResponses(questionID int) (int64, error) {
	args := m.Called(questionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) CountQuestionnaireLinks(questionID int) (int64, error) {
	args := m.Called(questionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) ListOptions(questionID int) ([]domain.Option, error) {
	args := m.Called(questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Option), args.Error(1)
}

// MockQuestionnaireRepository is a mock implementation of QuestionnaireRepository
type MockQuestionnaireRepository struct {
	mock.Mock
}

func (m *MockQuestionnaireRepository) ListSummaries() ([]domain.QuestionnaireSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionnaireSummary), args.Error(1)
}

func (m *MockQuestionnaireRepository) FindByID(id int) (*domain.QuestionnaireDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestionnaireDetail), args.Error(1)
}

func (m *MockQuestionnaireRepository) ListQuestions(questionnaireID int) ([]domain.QuestionDetail, error) {
	args := m.Called(questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionDetail), args.Error(1)
}

func (m *MockQuestionnaireRepository) Create(questionnaire *domain.Questionnaire) error {
	args := m.Called(questionnaire)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) UpdateFields(id int, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) ReplaceLinks(questionnaireID int, questionIDs []int) error {
	args := m.Called(questionnaireID, questionIDs)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) CountEvaluations(questionnaireID int) (int64, error) {
	args := m.Called(questionnaireID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionnaireRepository) DeleteWithLinks(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

// MockClassificationRepository is a mock implementation of ClassificationRepository
type MockClassificationRepository struct {
	mock.Mock
}

func (m *MockClassificationRepository) List() ([]domain.Classification, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Classification), args.Error(1)
}

// MockDashboardRepository is a mock implementation of DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GeneralStats(cutoff time.Time) (*domain.GeneralStats, error) {
	args := m.Called(cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralStats), args.Error(1)
}

func (m *MockDashboardRepository) MonthCounts(since time.Time) (map[string]int64, error) {
	args := m.Called(since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockDashboardRepository) YearCounts(since time.Time) (map[int]int64, error) {
	args := m.Called(since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int64), args.Error(1)
}

func (m *MockDashboardRepository) StatusCounts(cutoff time.Time) (*repository.StatusCounts, error) {
	args := m.Called(cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StatusCounts), args.Error(1)
}

func (m *MockDashboardRepository) RecentEvaluations(limit int) ([]domain.EvaluationRow, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EvaluationRow), args.Error(1)
}

func (m *MockDashboardRepository) QuestionnaireUsage(limit int, activeOnly bool) ([]domain.QuestionnaireUsage, error) {
	args := m.Called(limit, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionnaireUsage), args.Error(1)
}

func (m *MockDashboardRepository) SectorStats() ([]domain.SectorStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SectorStats), args.Error(1)
}

func (m *MockDashboardRepository) EvaluatorSectorStats() ([]domain.EvaluatorSectorStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EvaluatorSectorStats), args.Error(1)
}

func (m *MockDashboardRepository) ResponseFrequencies() ([]domain.ResponseFrequency, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResponseFrequency), args.Error(1)
}

func (m *MockDashboardRepository) OptionTallies(questionID int) ([]domain.OptionTally, error) {
	args := m.Called(questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OptionTally), args.Error(1)
}

func (m *MockDashboardRepository) OptionTalliesForQuestionnaire(questionnaireID int) ([]domain.OptionTally, error) {
	args := m.Called(questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OptionTally), args.Error(1)
}

func (m *MockDashboardRepository) RatingStats() (*domain.RatingStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingStats), args.Error(1)
}

func (m *MockDashboardRepository) DailyPoints(filter repository.DailyPointsFilter) ([]domain.DailyPoints, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyPoints), args.Error(1)
}

func (m *MockDashboardRepository) CountEvaluations() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockAdminRepository is a mock implementation of AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) PurgeAll() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
