package domain

// Classification is the questionnaire taxonomy
// Table: classificacao
type Classification struct {
	CodClassificacao int    `gorm:"column:cod_classificacao;primaryKey;autoIncrement" json:"id"`
	Nome             string `gorm:"column:nome" json:"nome"`
}

// TableName specifies the table name for Classification model
func (Classification) TableName() string {
	return "classificacao"
}

// Category is the classification taxonomy under its legacy API alias
type Category struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	Ativo     bool   `json:"ativo"`
}

// Questionnaire is a named, classified bundle of questions
// Table: questionario
type Questionnaire struct {
	CodQuestionario  int    `gorm:"column:cod_questionario;primaryKey;autoIncrement" json:"cod_questionario"`
	Nome             string `gorm:"column:nome" json:"nome"`
	Tipo             string `gorm:"column:tipo" json:"tipo,omitempty"`
	Status           string `gorm:"column:status" json:"status"`
	ClassificacaoCod int    `gorm:"column:classificacao_cod" json:"classificacao_cod"`
}

// TableName specifies the table name for Questionnaire model
func (Questionnaire) TableName() string {
	return "questionario"
}

// QuestionnaireLink joins questionnaires to questions, no duplicates.
// The link set is replaced wholesale on update, never merged.
// Table: questionario_questao
type QuestionnaireLink struct {
	QuestionarioCod int `gorm:"column:questionario_cod;primaryKey" json:"questionario_cod"`
	QuestaoCod      int `gorm:"column:questao_cod;primaryKey" json:"questao_cod"`
}

// TableName specifies the table name for QuestionnaireLink model
func (QuestionnaireLink) TableName() string {
	return "questionario_questao"
}

// QuestionnaireSummary is the listing shape with aggregate counts
type QuestionnaireSummary struct {
	ID              int    `json:"id"`
	Titulo          string `json:"titulo"`
	Tipo            string `json:"tipo,omitempty"`
	Status          string `json:"status"`
	Classificacao   string `json:"classificacao"`
	TotalPerguntas  int64  `json:"total_perguntas"`
	TotalAplicacoes int64  `json:"total_aplicacoes"`
}

// QuestionnaireDetail is the single-questionnaire shape with its questions
type QuestionnaireDetail struct {
	ID              int              `json:"id"`
	Titulo          string           `json:"titulo"`
	Tipo            string           `json:"tipo,omitempty"`
	Status          string           `json:"status"`
	Classificacao   string           `json:"classificacao"`
	ClassificacaoID int              `json:"classificacao_id"`
	Perguntas       []QuestionDetail `json:"perguntas"`
}

// CreateQuestionnaireRequest creates a questionnaire and optionally links
// questions to it
type CreateQuestionnaireRequest struct {
	Nome             string `json:"nome" binding:"required"`
	Tipo             string `json:"tipo"`
	Status           string `json:"status"`
	ClassificacaoCod int    `json:"classificacao_cod" binding:"required"`
	QuestoesIDs      []int  `json:"questoes_ids"`
}

// QuestionnairePatch carries partial questionnaire updates. A non-nil
// QuestoesIDs replaces the link set wholesale.
type QuestionnairePatch struct {
	Nome             *string `json:"nome"`
	Tipo             *string `json:"tipo"`
	Status           *string `json:"status"`
	ClassificacaoCod *int    `json:"classificacao_cod"`
	QuestoesIDs      *[]int  `json:"questoes_ids"`
}

// Fields returns the questionnaire column/value map of the supplied fields
// (links are handled separately)
func (p *QuestionnairePatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Nome != nil {
		fields["nome"] = *p.Nome
	}
	if p.Tipo != nil {
		fields["tipo"] = *p.Tipo
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.ClassificacaoCod != nil {
		fields["classificacao_cod"] = *p.ClassificacaoCod
	}
	return fields
}
