package repository

import (
	"errors"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"gorm.io/gorm"
)

const evaluationRowSelect = `a.cod_avaliacao AS id,
	a.local,
	a.data_completa,
	a.observacao_geral AS descricao,
	a.rating_geral AS rating,
	COALESCE(f.nome, '') AS funcionario,
	COALESCE(f.cpf, '') AS funcionario_cpf,
	COALESCE(av.nome, '') AS avaliador,
	COALESCE(av.cpf, '') AS avaliador_cpf,
	COALESCE(q.nome, '') AS questionario,
	COALESCE(q.cod_questionario, 0) AS questionario_id,
	COALESCE(f.setor, '') AS departamento`

// EvaluationRepository evaluation data access interface
type EvaluationRepository interface {
	List(evaluatedCPF string) ([]domain.EvaluationRow, error)
	FindByID(id int) (*domain.EvaluationDetail, error)
	ListResponses(evaluationID int) ([]domain.ResponseRow, error)
	Create(evaluation *domain.Evaluation) error
	UpdateFields(id int, fields map[string]interface{}) error
	Delete(id int) (int64, error)
	SaveResponse(evaluationID, questionID, optionID int) (*domain.Response, error)
	CountByEvaluator(cpf string) (int64, error)
	QuestionnaireOf(evaluationID int) (int, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new EvaluationRepository
func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) joined() *gorm.DB {
	return r.db.Table("avaliacao a").
		Joins("LEFT JOIN funcionario f ON a.avaliado_cpf = f.cpf").
		Joins("LEFT JOIN funcionario av ON a.avaliador_cpf = av.cpf").
		Joins("LEFT JOIN questionario q ON a.questionario_cod = q.cod_questionario")
}

// List returns evaluations joined with names, newest first, optionally
// narrowed to one evaluated employee
func (r *evaluationRepository) List(evaluatedCPF string) ([]domain.EvaluationRow, error) {
	tx := r.joined().Select(evaluationRowSelect)
	if evaluatedCPF != "" {
		tx = tx.Where("a.avaliado_cpf = ?", evaluatedCPF)
	}

	var rows []domain.EvaluationRow
	if err := tx.Order("a.data_completa DESC").Scan(&rows).Error; err != nil {
		return nil, classify("list evaluations", err)
	}
	return rows, nil
}

// FindByID finds one evaluation with its responses
func (r *evaluationRepository) FindByID(id int) (*domain.EvaluationDetail, error) {
	var detail domain.EvaluationDetail
	err := r.joined().
		Select(evaluationRowSelect + `,
			COALESCE(f.email, '') AS funcionario_email,
			COALESCE(q.status, '') AS questionario_status`).
		Where("a.cod_avaliacao = ?", id).
		Scan(&detail).Error
	if err != nil {
		return nil, classify("find evaluation", err)
	}
	if detail.ID == 0 {
		return nil, classify("find evaluation", gorm.ErrRecordNotFound)
	}

	responses, err := r.ListResponses(id)
	if err != nil {
		return nil, err
	}
	detail.Respostas = responses
	return &detail, nil
}

// ListResponses returns the answered questions of one evaluation
func (r *evaluationRepository) ListResponses(evaluationID int) ([]domain.ResponseRow, error) {
	var rows []domain.ResponseRow
	err := r.db.Table("resposta r").
		Select(`r.cod_resposta AS id,
			r.questao_cod,
			r.opcao_cod,
			COALESCE(q.texto_questao, '') AS pergunta,
			COALESCE(o.texto_opcao, '') AS escolha_selecionada,
			COALESCE(o.ordem, 0) AS ordem_opcao`).
		Joins("LEFT JOIN questao q ON r.questao_cod = q.cod_questao").
		Joins("LEFT JOIN opcao o ON r.opcao_cod = o.cod_opcao").
		Where("r.avaliacao_cod = ?", evaluationID).
		Order("r.cod_resposta").
		Scan(&rows).Error
	if err != nil {
		return nil, classify("list evaluation responses", err)
	}
	return rows, nil
}

// Create creates a new evaluation
func (r *evaluationRepository) Create(evaluation *domain.Evaluation) error {
	return classify("create evaluation", r.db.Create(evaluation).Error)
}

// UpdateFields applies a partial update; the row must exist
func (r *evaluationRepository) UpdateFields(id int, fields map[string]interface{}) error {
	result := r.db.Model(&domain.Evaluation{}).
		Where("cod_avaliacao = ?", id).
		Updates(fields)
	if result.Error != nil {
		return classify("update evaluation", result.Error)
	}
	if result.RowsAffected == 0 {
		return classify("update evaluation", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes the evaluation and cascades to its responses in one
// transaction
func (r *evaluationRepository) Delete(id int) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("avaliacao_cod = ?", id).Delete(&domain.Response{}).Error; err != nil {
			return err
		}
		result := tx.Where("cod_avaliacao = ?", id).Delete(&domain.Evaluation{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, classify("delete evaluation", err)
	}
	return affected, nil
}

// SaveResponse upserts the choice for one (evaluation, question) pair: an
// existing row keeps its id and gets the option replaced, otherwise a new
// row is inserted. Check-then-write runs inside one transaction; concurrent
// submissions of the same pair remain a known race.
func (r *evaluationRepository) SaveResponse(evaluationID, questionID, optionID int) (*domain.Response, error) {
	var saved domain.Response
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.Response
		err := tx.Where("avaliacao_cod = ? AND questao_cod = ?", evaluationID, questionID).
			First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err == nil {
			if err := tx.Model(&domain.Response{}).
				Where("cod_resposta = ?", existing.CodResposta).
				Update("opcao_cod", optionID).Error; err != nil {
				return err
			}
			existing.OpcaoCod = optionID
			saved = existing
			return nil
		}

		saved = domain.Response{
			AvaliacaoCod: evaluationID,
			QuestaoCod:   questionID,
			OpcaoCod:     optionID,
		}
		return tx.Create(&saved).Error
	})
	if err != nil {
		return nil, classify("save response", err)
	}
	return &saved, nil
}

// CountByEvaluator counts evaluations where the employee acted as the
// evaluator
func (r *evaluationRepository) CountByEvaluator(cpf string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Evaluation{}).
		Where("avaliador_cpf = ?", cpf).
		Count(&count).Error
	if err != nil {
		return 0, classify("count evaluator evaluations", err)
	}
	return count, nil
}

// QuestionnaireOf resolves the questionnaire an evaluation was built from
func (r *evaluationRepository) QuestionnaireOf(evaluationID int) (int, error) {
	var evaluation domain.Evaluation
	err := r.db.Select("questionario_cod").
		Where("cod_avaliacao = ?", evaluationID).
		First(&evaluation).Error
	if err != nil {
		return 0, classify("find evaluation questionnaire", err)
	}
	return evaluation.QuestionarioCod, nil
}
