package repository

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"gorm.io/gorm"
)

// QuestionFilter narrows question listings. Status accepts the gender
// variants found in legacy rows (Ativo/Ativa).
type QuestionFilter struct {
	Status string
	Busca  string
}

// QuestionRepository question data access interface
type QuestionRepository interface {
	List(filter QuestionFilter, page, perPage int) ([]domain.QuestionDetail, int64, error)
	FindByID(id int) (*domain.QuestionDetail, error)
	CreateWithOptions(question *domain.Question, optionTexts []string) error
	UpdateFields(id int, fields map[string]interface{}) error
	ReplaceOptions(questionID int, optionTexts []string) error
	DeleteWithOptions(id int) (int64, error)
	CountResponses(questionID int) (int64, error)
	CountQuestionnaireLinks(questionID int) (int64, error)
	ListOptions(questionID int) ([]domain.Option, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) filtered(filter QuestionFilter) *gorm.DB {
	tx := r.db.Model(&domain.Question{})
	switch filter.Status {
	case domain.QuestionStatusActive:
		tx = tx.Where("UPPER(status) IN ('ATIVO', 'ATIVA')")
	case domain.QuestionStatusInactive:
		tx = tx.Where("UPPER(status) IN ('INATIVO', 'INATIVA')")
	case "":
	default:
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Busca != "" {
		clause, arg := Contains("texto_questao", filter.Busca).Clause()
		tx = tx.Where(clause, arg)
	}
	return tx
}

// List returns one page of questions annotated with response counts and
// their ordered option sets
func (r *questionRepository) List(filter QuestionFilter, page, perPage int) ([]domain.QuestionDetail, int64, error) {
	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, classify("count questions", err)
	}

	var questions []domain.QuestionDetail
	err := r.filtered(filter).
		Select(`questao.cod_questao, questao.texto_questao, questao.status,
			COALESCE(COUNT(DISTINCT r.cod_resposta), 0) AS total_respostas`).
		Joins("LEFT JOIN resposta r ON questao.cod_questao = r.questao_cod").
		Group("questao.cod_questao, questao.texto_questao, questao.status").
		Order("questao.cod_questao").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Scan(&questions).Error
	if err != nil {
		return nil, 0, classify("list questions", err)
	}

	if err := r.attachOptions(questions); err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// attachOptions loads the option sets for all listed questions in one query
func (r *questionRepository) attachOptions(questions []domain.QuestionDetail) error {
	if len(questions) == 0 {
		return nil
	}
	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.CodQuestao
	}

	var options []domain.Option
	err := r.db.Where("questao_cod IN ?", ids).
		Order("questao_cod, ordem, cod_opcao").
		Find(&options).Error
	if err != nil {
		return classify("list question options", err)
	}

	byQuestion := make(map[int][]domain.Option, len(questions))
	for _, opt := range options {
		byQuestion[opt.QuestaoCod] = append(byQuestion[opt.QuestaoCod], opt)
	}
	for i := range questions {
		questions[i].Opcoes = byQuestion[questions[i].CodQuestao]
		if questions[i].Opcoes == nil {
			questions[i].Opcoes = []domain.Option{}
		}
	}
	return nil
}

// FindByID finds a question with its response count and options
func (r *questionRepository) FindByID(id int) (*domain.QuestionDetail, error) {
	var question domain.QuestionDetail
	err := r.db.Model(&domain.Question{}).
		Select(`questao.cod_questao, questao.texto_questao, questao.status,
			COALESCE(COUNT(DISTINCT r.cod_resposta), 0) AS total_respostas`).
		Joins("LEFT JOIN resposta r ON questao.cod_questao = r.questao_cod").
		Where("questao.cod_questao = ?", id).
		Group("questao.cod_questao, questao.texto_questao, questao.status").
		Scan(&question).Error
	if err != nil {
		return nil, classify("find question", err)
	}
	if question.CodQuestao == 0 {
		return nil, classify("find question", gorm.ErrRecordNotFound)
	}

	options, err := r.ListOptions(id)
	if err != nil {
		return nil, err
	}
	question.Opcoes = options
	return &question, nil
}

// CreateWithOptions inserts the question and its option set atomically.
// Option order follows the submitted sequence, starting at 1.
func (r *questionRepository) CreateWithOptions(question *domain.Question, optionTexts []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		return insertOptions(tx, question.CodQuestao, optionTexts)
	})
	return classify("create question", err)
}

func insertOptions(tx *gorm.DB, questionID int, optionTexts []string) error {
	for i, texto := range optionTexts {
		option := domain.Option{
			TextoOpcao: texto,
			Ordem:      i + 1,
			QuestaoCod: questionID,
		}
		if err := tx.Create(&option).Error; err != nil {
			return err
		}
	}
	return nil
}

// UpdateFields applies a partial update; the row must exist
func (r *questionRepository) UpdateFields(id int, fields map[string]interface{}) error {
	result := r.db.Model(&domain.Question{}).
		Where("cod_questao = ?", id).
		Updates(fields)
	if result.Error != nil {
		return classify("update question", result.Error)
	}
	if result.RowsAffected == 0 {
		return classify("update question", gorm.ErrRecordNotFound)
	}
	return nil
}

// ReplaceOptions swaps the option set wholesale in one transaction
func (r *questionRepository) ReplaceOptions(questionID int, optionTexts []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("questao_cod = ?", questionID).Delete(&domain.Option{}).Error; err != nil {
			return err
		}
		return insertOptions(tx, questionID, optionTexts)
	})
	return classify("replace question options", err)
}

// DeleteWithOptions removes the question and its options atomically,
// returning the question rows affected
func (r *questionRepository) DeleteWithOptions(id int) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("questao_cod = ?", id).Delete(&domain.Option{}).Error; err != nil {
			return err
		}
		result := tx.Where("cod_questao = ?", id).Delete(&domain.Question{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, classify("delete question", err)
	}
	return affected, nil
}

// CountResponses counts responses referencing the question
func (r *questionRepository) CountResponses(questionID int) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Response{}).
		Where("questao_cod = ?", questionID).
		Count(&count).Error
	if err != nil {
		return 0, classify("count question responses", err)
	}
	return count, nil
}

// CountQuestionnaireLinks counts questionnaire links referencing the
// question
func (r *questionRepository) CountQuestionnaireLinks(questionID int) (int64, error) {
	var count int64
	err := r.db.Model(&domain.QuestionnaireLink{}).
		Where("questao_cod = ?", questionID).
		Count(&count).Error
	if err != nil {
		return 0, classify("count questionnaire links", err)
	}
	return count, nil
}

// ListOptions returns the ordered option set of a question; ties on ordem
// break by option id
func (r *questionRepository) ListOptions(questionID int) ([]domain.Option, error) {
	var options []domain.Option
	err := r.db.Where("questao_cod = ?", questionID).
		Order("ordem, cod_opcao").
		Find(&options).Error
	if err != nil {
		return nil, classify("list question options", err)
	}
	return options, nil
}
