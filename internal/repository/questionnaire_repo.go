package repository

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"gorm.io/gorm"
)

// QuestionnaireRepository questionnaire data access interface
type QuestionnaireRepository interface {
	ListSummaries() ([]domain.QuestionnaireSummary, error)
	FindByID(id int) (*domain.QuestionnaireDetail, error)
	ListQuestions(questionnaireID int) ([]domain.QuestionDetail, error)
	Create(questionnaire *domain.Questionnaire) error
	UpdateFields(id int, fields map[string]interface{}) error
	ReplaceLinks(questionnaireID int, questionIDs []int) error
	CountEvaluations(questionnaireID int) (int64, error)
	DeleteWithLinks(id int) (int64, error)
}

type questionnaireRepository struct {
	db *gorm.DB
}

// NewQuestionnaireRepository creates a new QuestionnaireRepository
func NewQuestionnaireRepository(db *gorm.DB) QuestionnaireRepository {
	return &questionnaireRepository{db: db}
}

// ListSummaries lists questionnaires with linked-question and application
// counts, newest first
func (r *questionnaireRepository) ListSummaries() ([]domain.QuestionnaireSummary, error) {
	var summaries []domain.QuestionnaireSummary
	err := r.db.Table("questionario q").
		Select(`q.cod_questionario AS id,
			q.nome AS titulo,
			q.tipo,
			q.status,
			COALESCE(c.nome, '') AS classificacao,
			COUNT(DISTINCT qq.questao_cod) AS total_perguntas,
			COUNT(DISTINCT a.cod_avaliacao) AS total_aplicacoes`).
		Joins("LEFT JOIN classificacao c ON q.classificacao_cod = c.cod_classificacao").
		Joins("LEFT JOIN questionario_questao qq ON q.cod_questionario = qq.questionario_cod").
		Joins("LEFT JOIN avaliacao a ON q.cod_questionario = a.questionario_cod").
		Group("q.cod_questionario, q.nome, q.tipo, q.status, c.nome").
		Order("q.cod_questionario DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, classify("list questionnaires", err)
	}
	return summaries, nil
}

// FindByID finds a questionnaire with its classification and questions
func (r *questionnaireRepository) FindByID(id int) (*domain.QuestionnaireDetail, error) {
	var detail domain.QuestionnaireDetail
	err := r.db.Table("questionario q").
		Select(`q.cod_questionario AS id,
			q.nome AS titulo,
			q.tipo,
			q.status,
			COALESCE(c.nome, '') AS classificacao,
			COALESCE(c.cod_classificacao, 0) AS classificacao_id`).
		Joins("LEFT JOIN classificacao c ON q.classificacao_cod = c.cod_classificacao").
		Where("q.cod_questionario = ?", id).
		Scan(&detail).Error
	if err != nil {
		return nil, classify("find questionnaire", err)
	}
	if detail.ID == 0 {
		return nil, classify("find questionnaire", gorm.ErrRecordNotFound)
	}

	questions, err := r.ListQuestions(id)
	if err != nil {
		return nil, err
	}
	detail.Perguntas = questions
	return &detail, nil
}

// ListQuestions returns the linked questions with their option sets
func (r *questionnaireRepository) ListQuestions(questionnaireID int) ([]domain.QuestionDetail, error) {
	var questions []domain.QuestionDetail
	err := r.db.Table("questionario_questao qq").
		Select("qu.cod_questao, qu.texto_questao, qu.status").
		Joins("JOIN questao qu ON qq.questao_cod = qu.cod_questao").
		Where("qq.questionario_cod = ?", questionnaireID).
		Order("qu.cod_questao").
		Scan(&questions).Error
	if err != nil {
		return nil, classify("list questionnaire questions", err)
	}

	for i := range questions {
		var options []domain.Option
		err := r.db.Where("questao_cod = ?", questions[i].CodQuestao).
			Order("ordem, cod_opcao").
			Find(&options).Error
		if err != nil {
			return nil, classify("list question options", err)
		}
		questions[i].Opcoes = options
	}
	return questions, nil
}

// Create creates a new questionnaire
func (r *questionnaireRepository) Create(questionnaire *domain.Questionnaire) error {
	return classify("create questionnaire", r.db.Create(questionnaire).Error)
}

// UpdateFields applies a partial update; the row must exist
func (r *questionnaireRepository) UpdateFields(id int, fields map[string]interface{}) error {
	result := r.db.Model(&domain.Questionnaire{}).
		Where("cod_questionario = ?", id).
		Updates(fields)
	if result.Error != nil {
		return classify("update questionnaire", result.Error)
	}
	if result.RowsAffected == 0 {
		return classify("update questionnaire", gorm.ErrRecordNotFound)
	}
	return nil
}

// ReplaceLinks swaps the question link set wholesale in one transaction.
// Duplicate ids collapse to one link.
func (r *questionnaireRepository) ReplaceLinks(questionnaireID int, questionIDs []int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("questionario_cod = ?", questionnaireID).
			Delete(&domain.QuestionnaireLink{}).Error; err != nil {
			return err
		}

		seen := make(map[int]bool, len(questionIDs))
		for _, questionID := range questionIDs {
			if seen[questionID] {
				continue
			}
			seen[questionID] = true
			link := domain.QuestionnaireLink{
				QuestionarioCod: questionnaireID,
				QuestaoCod:      questionID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return classify("replace questionnaire links", err)
}

// CountEvaluations counts evaluations referencing the questionnaire
func (r *questionnaireRepository) CountEvaluations(questionnaireID int) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Evaluation{}).
		Where("questionario_cod = ?", questionnaireID).
		Count(&count).Error
	if err != nil {
		return 0, classify("count questionnaire evaluations", err)
	}
	return count, nil
}

// DeleteWithLinks removes the question links then the questionnaire row in
// one transaction, returning the questionnaire rows affected
func (r *questionnaireRepository) DeleteWithLinks(id int) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("questionario_cod = ?", id).
			Delete(&domain.QuestionnaireLink{}).Error; err != nil {
			return err
		}
		result := tx.Where("cod_questionario = ?", id).Delete(&domain.Questionnaire{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, classify("delete questionnaire", err)
	}
	return affected, nil
}
