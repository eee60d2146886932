package domain

import "time"

// GeneralStats are the dashboard headline counters
type GeneralStats struct {
	PerguntasCadastradas  int64 `json:"perguntas_cadastradas"`
	FormulariosAtivos     int64 `json:"formularios_ativos"`
	AvaliacoesPendentes   int64 `json:"avaliacoes_pendentes"`
	AvaliacoesConcluidas  int64 `json:"avaliacoes_concluidas"`
	FuncionariosAtivos    int64 `json:"funcionarios_ativos"`
	AvaliadoresAtivos     int64 `json:"avaliadores_ativos"`
}

// TimeBucket is one calendar unit of a zero-filled series
type TimeBucket struct {
	Label string `json:"mes"`
	Valor int64  `json:"valor"`
}

// YearBucket is one calendar year of a zero-filled series
type YearBucket struct {
	Ano   int   `json:"ano"`
	Valor int64 `json:"valor"`
}

// StatusCount is one slice of the derived-status distribution, with the
// chart color the presentation layer expects
type StatusCount struct {
	Status EvaluationStatus `json:"status"`
	Valor  int64            `json:"valor"`
	Cor    string           `json:"cor"`
}

// Activity is one entry of the recent-activity feed
type Activity struct {
	Tipo      string    `json:"tipo"`
	ID        int       `json:"id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	Data      time.Time `json:"data"`
	Cor       string    `json:"cor"`
	Tempo     string    `json:"tempo"`
}

// QuestionnaireUsage ranks questionnaires by application volume
type QuestionnaireUsage struct {
	CodQuestionario int      `json:"cod_questionario"`
	Nome            string   `json:"nome"`
	Tipo            string   `json:"tipo,omitempty"`
	TotalUsos       int64    `json:"total_usos"`
	MediaRating     *float64 `json:"media_rating"`
}

// QuestionnaireShare is one questionnaire's slice of the total application
// volume
type QuestionnaireShare struct {
	CodQuestionario int     `json:"cod_questionario"`
	Nome            string  `json:"nome"`
	TotalUsos       int64   `json:"total_usos"`
	Percentual      float64 `json:"percentual"`
}

// SectorStats aggregates evaluations per sector of the evaluated employee
type SectorStats struct {
	Departamento string `json:"departamento"`
	Total        int64  `json:"total"`
	Concluidas   int64  `json:"concluidas"`
	Pendentes    int64  `json:"pendentes"`
}

// EvaluatorSectorStats aggregates evaluator contributions per sector
type EvaluatorSectorStats struct {
	Setor     string `json:"setor"`
	Avaliador string `json:"avaliador"`
	CPF       string `json:"cpf"`
	Total     int64  `json:"total"`
}

// OptionTally counts responses per option. The option universe, not just
// observed responses, defines the rows, so zero tallies appear.
type OptionTally struct {
	QuestaoID               int    `json:"questao_id"`
	Pergunta                string `json:"pergunta"`
	OpcaoCod                int    `json:"opcao_cod"`
	AlternativaSelecionada  string `json:"alternativa_selecionada"`
	Quantidade              int64  `json:"quantidade"`
}

// ResponseFrequency is one observed (question, option) tally
type ResponseFrequency struct {
	Pergunta   string `json:"pergunta"`
	Resposta   string `json:"resposta"`
	Quantidade int64  `json:"quantidade"`
}

// DailyPoints is the rating sum of one calendar day
type DailyPoints struct {
	Data  time.Time `json:"data"`
	Total float64   `json:"total"`
}

// RatingStats summarizes recorded ratings
type RatingStats struct {
	Media  *float64 `json:"media"`
	Minimo *float64 `json:"minimo"`
	Maximo *float64 `json:"maximo"`
	Total  int64    `json:"total"`
}

// CompletionRate is the derived-status breakdown with the completion ratio
type CompletionRate struct {
	Concluidas    int64   `json:"concluidas"`
	Pendentes     int64   `json:"pendentes"`
	EmAndamento   int64   `json:"em_andamento"`
	Total         int64   `json:"total"`
	TaxaConclusao float64 `json:"taxa_conclusao"`
}

// ExitReason is the legacy exit-reason distribution entry. The upstream
// system fabricates these shares from the evaluation total; the behavior is
// reproduced as-is for the presentation layer.
type ExitReason struct {
	Motivo     string `json:"motivo"`
	Cor        string `json:"cor"`
	Quantidade int64  `json:"quantidade"`
	Percentual int    `json:"percentual"`
}

// Chart colors used by the dashboard client
const (
	ColorCompleted  = "#4caf50"
	ColorPending    = "#ff9800"
	ColorInProgress = "#2196f3"
)
