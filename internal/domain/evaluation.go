package domain

import (
	"fmt"
	"time"
)

// EvaluationStatus is derived on read, never persisted
type EvaluationStatus string

const (
	EvaluationCompleted  EvaluationStatus = "Concluída"
	EvaluationPending    EvaluationStatus = "Pendente"
	EvaluationInProgress EvaluationStatus = "Em Andamento"
)

// PendingAfter is the age past which an unrated evaluation stops counting
// as in progress
const PendingAfter = 7 * 24 * time.Hour

// Evaluation is one assessment of an employee by an evaluator using a
// questionnaire
// Table: avaliacao
type Evaluation struct {
	CodAvaliacao    int       `gorm:"column:cod_avaliacao;primaryKey;autoIncrement" json:"cod_avaliacao"`
	Local           *string   `gorm:"column:local" json:"local,omitempty"`
	DataCompleta    time.Time `gorm:"column:data_completa" json:"data_completa"`
	ObservacaoGeral *string   `gorm:"column:observacao_geral" json:"observacao_geral,omitempty"`
	RatingGeral     *float64  `gorm:"column:rating_geral" json:"rating_geral,omitempty"`
	AvaliadoCPF     string    `gorm:"column:avaliado_cpf;index" json:"avaliado_cpf"`
	AvaliadorCPF    string    `gorm:"column:avaliador_cpf;index" json:"avaliador_cpf"`
	QuestionarioCod int       `gorm:"column:questionario_cod;index" json:"questionario_cod"`
}

// TableName specifies the table name for Evaluation model
func (Evaluation) TableName() string {
	return "avaliacao"
}

// DerivedStatus computes the three-way status from the rating and age.
// Completed wins regardless of age; there is no un-completing.
func (e *Evaluation) DerivedStatus(now time.Time) EvaluationStatus {
	return DeriveStatus(e.RatingGeral, e.DataCompleta, now)
}

// DeriveStatus applies the status rule used everywhere a grouping is
// needed: rated means completed; unrated older than the threshold means
// pending; otherwise in progress.
func DeriveStatus(rating *float64, completedAt, now time.Time) EvaluationStatus {
	if rating != nil {
		return EvaluationCompleted
	}
	if now.Sub(completedAt) > PendingAfter {
		return EvaluationPending
	}
	return EvaluationInProgress
}

// RelativeTimeLabel renders the elapsed time since t at three
// granularities, matching the recent-activity feed wording
func RelativeTimeLabel(t, now time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Hour:
		return "Há alguns minutos"
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("Há %d horas", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("Há %d dias", int(elapsed.Hours()/24))
	}
}

// Response is a single recorded choice for one question within one
// evaluation. At most one row exists per (avaliacao, questao); saves are
// upserts.
// Table: resposta
type Response struct {
	CodResposta  int `gorm:"column:cod_resposta;primaryKey;autoIncrement" json:"cod_resposta"`
	AvaliacaoCod int `gorm:"column:avaliacao_cod;uniqueIndex:idx_resposta_avaliacao_questao" json:"avaliacao_cod"`
	QuestaoCod   int `gorm:"column:questao_cod;uniqueIndex:idx_resposta_avaliacao_questao" json:"questao_cod"`
	OpcaoCod     int `gorm:"column:opcao_cod" json:"opcao_cod"`
}

// TableName specifies the table name for Response model
func (Response) TableName() string {
	return "resposta"
}

// EvaluationRow is the joined listing shape
type EvaluationRow struct {
	ID              int       `json:"id"`
	Local           *string   `json:"local"`
	DataCompleta    time.Time `json:"data_completa"`
	Descricao       *string   `json:"descricao"`
	Rating          *float64  `json:"rating"`
	Funcionario     string    `json:"funcionario"`
	FuncionarioCPF  string    `json:"funcionario_cpf"`
	Avaliador       string    `json:"avaliador"`
	AvaliadorCPF    string    `json:"avaliador_cpf"`
	Questionario    string    `json:"questionario"`
	QuestionarioID  int       `json:"questionario_id"`
	Departamento    string    `json:"departamento"`
}

// ResponseRow is one answered question of an evaluation detail
type ResponseRow struct {
	ID                  int    `json:"id"`
	QuestaoCod          int    `json:"questao_cod"`
	OpcaoCod            int    `json:"opcao_cod"`
	Pergunta            string `json:"pergunta"`
	EscolhaSelecionada  string `json:"escolha_selecionada"`
	OrdemOpcao          int    `json:"ordem_opcao"`
}

// EvaluationDetail is the single-evaluation shape with its responses
type EvaluationDetail struct {
	EvaluationRow
	FuncionarioEmail   string        `json:"funcionario_email,omitempty"`
	QuestionarioStatus string        `json:"questionario_status,omitempty"`
	Respostas          []ResponseRow `json:"respostas"`
}

// CreateEvaluationRequest creates an evaluation; the timestamp is set
// server-side
type CreateEvaluationRequest struct {
	AvaliadoCPF     string   `json:"avaliado_cpf" binding:"required"`
	AvaliadorCPF    string   `json:"avaliador_cpf" binding:"required"`
	QuestionarioCod int      `json:"questionario_cod" binding:"required"`
	Local           *string  `json:"local"`
	ObservacaoGeral *string  `json:"observacao_geral"`
	RatingGeral     *float64 `json:"rating_geral"`
}

// EvaluationStatusPatch mutates rating/note independently of the
// configuration fields
type EvaluationStatusPatch struct {
	RatingGeral     *float64 `json:"rating_geral"`
	ObservacaoGeral *string  `json:"observacao_geral"`
}

// Fields returns the column/value map of the supplied fields
func (p *EvaluationStatusPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.RatingGeral != nil {
		fields["rating_geral"] = *p.RatingGeral
	}
	if p.ObservacaoGeral != nil {
		fields["observacao_geral"] = *p.ObservacaoGeral
	}
	return fields
}

// EvaluationConfigPatch mutates the configuration fields of an evaluation
type EvaluationConfigPatch struct {
	AvaliadoCPF     *string `json:"avaliado_cpf"`
	AvaliadorCPF    *string `json:"avaliador_cpf"`
	QuestionarioCod *int    `json:"questionario_cod"`
	Local           *string `json:"local"`
	ObservacaoGeral *string `json:"observacao_geral"`
}

// Fields returns the column/value map of the supplied fields
func (p *EvaluationConfigPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.AvaliadoCPF != nil {
		fields["avaliado_cpf"] = *p.AvaliadoCPF
	}
	if p.AvaliadorCPF != nil {
		fields["avaliador_cpf"] = *p.AvaliadorCPF
	}
	if p.QuestionarioCod != nil {
		fields["questionario_cod"] = *p.QuestionarioCod
	}
	if p.Local != nil {
		fields["local"] = *p.Local
	}
	if p.ObservacaoGeral != nil {
		fields["observacao_geral"] = *p.ObservacaoGeral
	}
	return fields
}

// SaveResponseRequest records one choice; repeated submissions for the same
// (avaliacao, questao) pair overwrite the chosen option
type SaveResponseRequest struct {
	AvaliacaoCod int `json:"avaliacao_cod" binding:"required"`
	QuestaoCod   int `json:"questao_cod" binding:"required"`
	OpcaoCod     int `json:"opcao_cod" binding:"required"`
}
