package repository

import (
	"time"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"gorm.io/gorm"
)

// StatusCounts carries the derived-status breakdown of the whole avaliacao
// table, computed in a single scan against the rating/age rule
type StatusCounts struct {
	Concluidas  int64 `json:"concluidas"`
	Pendentes   int64 `json:"pendentes"`
	EmAndamento int64 `json:"em_andamento"`
	Total       int64 `json:"total"`
}

// DailyPointsFilter selects which slice of the rating history to sum. The
// modes are mutually exclusive and resolved in this order: explicit range,
// start only, end only, trailing window, full history.
type DailyPointsFilter struct {
	Start    *time.Time
	End      *time.Time
	LastDays *int
}

// DashboardRepository aggregate queries backing the dashboard surface
type DashboardRepository interface {
	GeneralStats(cutoff time.Time) (*domain.GeneralStats, error)
	MonthCounts(since time.Time) (map[string]int64, error)
	YearCounts(since time.Time) (map[int]int64, error)
	StatusCounts(cutoff time.Time) (*StatusCounts, error)
	RecentEvaluations(limit int) ([]domain.EvaluationRow, error)
	QuestionnaireUsage(limit int, activeOnly bool) ([]domain.QuestionnaireUsage, error)
	SectorStats() ([]domain.SectorStats, error)
	EvaluatorSectorStats() ([]domain.EvaluatorSectorStats, error)
	ResponseFrequencies() ([]domain.ResponseFrequency, error)
	OptionTallies(questionID int) ([]domain.OptionTally, error)
	OptionTalliesForQuestionnaire(questionnaireID int) ([]domain.OptionTally, error)
	RatingStats() (*domain.RatingStats, error)
	DailyPoints(filter DailyPointsFilter) ([]domain.DailyPoints, error)
	CountEvaluations() (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// Question status carries both gender spellings in legacy rows, so every
// status predicate on questao must accept either.
const generalStatsQuery = `SELECT
	(SELECT COUNT(*) FROM questao WHERE UPPER(status) IN ('ATIVO', 'ATIVA')) AS perguntas_cadastradas,
	(SELECT COUNT(*) FROM questionario WHERE UPPER(status) = 'ATIVO') AS formularios_ativos,
	(SELECT COUNT(*) FROM avaliacao WHERE rating_geral IS NULL AND data_completa < ?) AS avaliacoes_pendentes,
	(SELECT COUNT(*) FROM avaliacao WHERE rating_geral IS NOT NULL) AS avaliacoes_concluidas,
	(SELECT COUNT(*) FROM funcionario WHERE UPPER(status) = 'ATIVO') AS funcionarios_ativos,
	(SELECT COUNT(DISTINCT avaliador_cpf) FROM avaliacao) AS avaliadores_ativos`

// GeneralStats computes the headline counters in one round trip
func (r *dashboardRepository) GeneralStats(cutoff time.Time) (*domain.GeneralStats, error) {
	var stats domain.GeneralStats
	err := r.db.Raw(generalStatsQuery, cutoff).Scan(&stats).Error
	if err != nil {
		return nil, classify("dashboard general stats", err)
	}
	return &stats, nil
}

type periodCount struct {
	Periodo time.Time `gorm:"column:periodo"`
	Total   int64     `gorm:"column:total"`
}

// MonthCounts groups evaluations per calendar month since the cutoff, keyed
// "2006-01". Months with no evaluations are absent; callers zero-fill.
func (r *dashboardRepository) MonthCounts(since time.Time) (map[string]int64, error) {
	var rows []periodCount
	err := r.db.Raw(`SELECT date_trunc('month', data_completa) AS periodo, COUNT(*) AS total
		FROM avaliacao
		WHERE data_completa >= ?
		GROUP BY 1
		ORDER BY 1`, since).Scan(&rows).Error
	if err != nil {
		return nil, classify("dashboard month counts", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Periodo.Format("2006-01")] = row.Total
	}
	return counts, nil
}

// YearCounts groups evaluations per calendar year since the cutoff
func (r *dashboardRepository) YearCounts(since time.Time) (map[int]int64, error) {
	var rows []periodCount
	err := r.db.Raw(`SELECT date_trunc('year', data_completa) AS periodo, COUNT(*) AS total
		FROM avaliacao
		WHERE data_completa >= ?
		GROUP BY 1
		ORDER BY 1`, since).Scan(&rows).Error
	if err != nil {
		return nil, classify("dashboard year counts", err)
	}
	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.Periodo.Year()] = row.Total
	}
	return counts, nil
}

// StatusCounts applies the derived-status rule to the whole table in one
// scan; cutoff is now minus the pending threshold
func (r *dashboardRepository) StatusCounts(cutoff time.Time) (*StatusCounts, error) {
	var counts StatusCounts
	err := r.db.Raw(`SELECT
		COUNT(*) FILTER (WHERE rating_geral IS NOT NULL) AS concluidas,
		COUNT(*) FILTER (WHERE rating_geral IS NULL AND data_completa < ?) AS pendentes,
		COUNT(*) FILTER (WHERE rating_geral IS NULL AND data_completa >= ?) AS em_andamento,
		COUNT(*) AS total
		FROM avaliacao`, cutoff, cutoff).Scan(&counts).Error
	if err != nil {
		return nil, classify("dashboard status counts", err)
	}
	return &counts, nil
}

// RecentEvaluations returns the latest evaluations for the activity feed
func (r *dashboardRepository) RecentEvaluations(limit int) ([]domain.EvaluationRow, error) {
	var rows []domain.EvaluationRow
	err := r.db.Table("avaliacao a").
		Select(evaluationRowSelect).
		Joins("LEFT JOIN funcionario f ON a.avaliado_cpf = f.cpf").
		Joins("LEFT JOIN funcionario av ON a.avaliador_cpf = av.cpf").
		Joins("LEFT JOIN questionario q ON a.questionario_cod = q.cod_questionario").
		Order("a.data_completa DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, classify("dashboard recent evaluations", err)
	}
	return rows, nil
}

// QuestionnaireUsage ranks questionnaires by application volume with the
// average rating of their evaluations
func (r *dashboardRepository) QuestionnaireUsage(limit int, activeOnly bool) ([]domain.QuestionnaireUsage, error) {
	tx := r.db.Table("questionario q").
		Select(`q.cod_questionario,
			q.nome,
			COALESCE(q.tipo, '') AS tipo,
			COUNT(a.cod_avaliacao) AS total_usos,
			AVG(a.rating_geral) AS media_rating`).
		Joins("LEFT JOIN avaliacao a ON a.questionario_cod = q.cod_questionario").
		Group("q.cod_questionario, q.nome, q.tipo").
		Order("total_usos DESC, q.cod_questionario")
	if activeOnly {
		tx = tx.Where("UPPER(q.status) = ?", "ATIVO")
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var usage []domain.QuestionnaireUsage
	if err := tx.Scan(&usage).Error; err != nil {
		return nil, classify("dashboard questionnaire usage", err)
	}
	return usage, nil
}

// SectorStats aggregates evaluations per sector of the evaluated employee.
// Employees without a sector are left out, and sectors with no evaluations
// are excluded by the inner join.
const sectorStatsQuery = `SELECT
	f.setor AS departamento,
	COUNT(*) AS total,
	COUNT(*) FILTER (WHERE a.rating_geral IS NOT NULL) AS concluidas,
	COUNT(*) FILTER (WHERE a.rating_geral IS NULL) AS pendentes
	FROM avaliacao a
	JOIN funcionario f ON a.avaliado_cpf = f.cpf
	WHERE f.setor IS NOT NULL
	GROUP BY f.setor
	ORDER BY total DESC`

func (r *dashboardRepository) SectorStats() ([]domain.SectorStats, error) {
	var stats []domain.SectorStats
	err := r.db.Raw(sectorStatsQuery).Scan(&stats).Error
	if err != nil {
		return nil, classify("dashboard sector stats", err)
	}
	return stats, nil
}

// EvaluatorSectorStats aggregates evaluator contributions per sector
func (r *dashboardRepository) EvaluatorSectorStats() ([]domain.EvaluatorSectorStats, error) {
	var stats []domain.EvaluatorSectorStats
	err := r.db.Raw(`SELECT
		COALESCE(f.setor, 'Sem setor') AS setor,
		f.nome AS avaliador,
		f.cpf,
		COUNT(*) AS total
		FROM avaliacao a
		JOIN funcionario f ON a.avaliador_cpf = f.cpf
		GROUP BY COALESCE(f.setor, 'Sem setor'), f.nome, f.cpf
		ORDER BY setor, total DESC`).Scan(&stats).Error
	if err != nil {
		return nil, classify("dashboard evaluator sector stats", err)
	}
	return stats, nil
}

// ResponseFrequencies tallies observed responses per question and option
func (r *dashboardRepository) ResponseFrequencies() ([]domain.ResponseFrequency, error) {
	var frequencies []domain.ResponseFrequency
	err := r.db.Raw(`SELECT
		q.texto_questao AS pergunta,
		o.texto_opcao AS resposta,
		COUNT(*) AS quantidade
		FROM resposta r
		JOIN questao q ON r.questao_cod = q.cod_questao
		JOIN opcao o ON r.opcao_cod = o.cod_opcao
		GROUP BY q.texto_questao, o.texto_opcao
		ORDER BY q.texto_questao, quantidade DESC`).Scan(&frequencies).Error
	if err != nil {
		return nil, classify("dashboard response frequencies", err)
	}
	return frequencies, nil
}

const optionTallySelect = `q.cod_questao AS questao_id,
	q.texto_questao AS pergunta,
	o.cod_opcao,
	o.texto_opcao AS alternativa_selecionada,
	COUNT(r.cod_resposta) AS quantidade`

// OptionTallies counts responses per option of one question. The option
// universe defines the rows, so unchosen options appear with zero.
func (r *dashboardRepository) OptionTallies(questionID int) ([]domain.OptionTally, error) {
	var tallies []domain.OptionTally
	err := r.db.Table("opcao o").
		Select(optionTallySelect).
		Joins("JOIN questao q ON o.questao_cod = q.cod_questao").
		Joins("LEFT JOIN resposta r ON r.opcao_cod = o.cod_opcao").
		Where("q.cod_questao = ?", questionID).
		Group("q.cod_questao, q.texto_questao, o.cod_opcao, o.texto_opcao, o.ordem").
		Order("o.ordem, o.cod_opcao").
		Scan(&tallies).Error
	if err != nil {
		return nil, classify("question option tallies", err)
	}
	return tallies, nil
}

// A question can be linked to several questionnaires; the questionnaire
// chart must only count responses given under its own evaluations.
const scopedResponseJoin = `LEFT JOIN resposta r ON r.opcao_cod = o.cod_opcao
	AND r.avaliacao_cod IN (SELECT cod_avaliacao FROM avaliacao WHERE questionario_cod = ?)`

// OptionTalliesForQuestionnaire counts responses per option across every
// question linked to a questionnaire
func (r *dashboardRepository) OptionTalliesForQuestionnaire(questionnaireID int) ([]domain.OptionTally, error) {
	var tallies []domain.OptionTally
	err := r.db.Table("opcao o").
		Select(optionTallySelect).
		Joins("JOIN questao q ON o.questao_cod = q.cod_questao").
		Joins("JOIN questionario_questao qq ON qq.questao_cod = q.cod_questao").
		Joins(scopedResponseJoin, questionnaireID).
		Where("qq.questionario_cod = ?", questionnaireID).
		Group("q.cod_questao, q.texto_questao, o.cod_opcao, o.texto_opcao, o.ordem").
		Order("q.cod_questao, o.ordem, o.cod_opcao").
		Scan(&tallies).Error
	if err != nil {
		return nil, classify("questionnaire option tallies", err)
	}
	return tallies, nil
}

// RatingStats summarizes the recorded ratings
func (r *dashboardRepository) RatingStats() (*domain.RatingStats, error) {
	var stats domain.RatingStats
	err := r.db.Raw(`SELECT
		AVG(rating_geral) AS media,
		MIN(rating_geral) AS minimo,
		MAX(rating_geral) AS maximo,
		COUNT(rating_geral) AS total
		FROM avaliacao
		WHERE rating_geral IS NOT NULL`).Scan(&stats).Error
	if err != nil {
		return nil, classify("dashboard rating stats", err)
	}
	return &stats, nil
}

// DailyPoints sums ratings per calendar day under the requested filter mode
func (r *dashboardRepository) DailyPoints(filter DailyPointsFilter) ([]domain.DailyPoints, error) {
	tx := r.db.Table("avaliacao").
		Select("DATE(data_completa) AS data, SUM(rating_geral) AS total").
		Where("rating_geral IS NOT NULL")

	switch {
	case filter.Start != nil && filter.End != nil:
		tx = tx.Where("DATE(data_completa) BETWEEN ? AND ?", *filter.Start, *filter.End)
	case filter.Start != nil:
		tx = tx.Where("DATE(data_completa) >= ?", *filter.Start)
	case filter.End != nil:
		tx = tx.Where("DATE(data_completa) <= ?", *filter.End)
	case filter.LastDays != nil:
		tx = tx.Where("data_completa >= CURRENT_DATE - make_interval(days => ?)", *filter.LastDays)
	}

	var points []domain.DailyPoints
	err := tx.Group("DATE(data_completa)").
		Order("data").
		Scan(&points).Error
	if err != nil {
		return nil, classify("dashboard daily points", err)
	}
	return points, nil
}

// CountEvaluations counts every evaluation regardless of status
func (r *dashboardRepository) CountEvaluations() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Evaluation{}).Count(&count).Error; err != nil {
		return 0, classify("count evaluations", err)
	}
	return count, nil
}
