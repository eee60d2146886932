package domain

// Question status values. The legacy data mixes gender variants
// (Ativo/Ativa), so filters match both.
const (
	QuestionStatusActive   = "Ativo"
	QuestionStatusInactive = "Inativo"
)

// Question represents a multiple-choice question
// Table: questao
type Question struct {
	CodQuestao   int    `gorm:"column:cod_questao;primaryKey;autoIncrement" json:"cod_questao"`
	TextoQuestao string `gorm:"column:texto_questao" json:"texto_questao"`
	Status       string `gorm:"column:status" json:"status"`
}

// TableName specifies the table name for Question model
func (Question) TableName() string {
	return "questao"
}

// Option is one answer choice of a question, ordered by (ordem, cod_opcao)
// Table: opcao
type Option struct {
	CodOpcao   int    `gorm:"column:cod_opcao;primaryKey;autoIncrement" json:"cod_opcao"`
	TextoOpcao string `gorm:"column:texto_opcao" json:"texto_opcao"`
	Ordem      int    `gorm:"column:ordem" json:"ordem"`
	QuestaoCod int    `gorm:"column:questao_cod;index" json:"questao_cod,omitempty"`
}

// TableName specifies the table name for Option model
func (Option) TableName() string {
	return "opcao"
}

// QuestionDetail is the API shape for a question: its row, the response
// usage count and the ordered option set
type QuestionDetail struct {
	CodQuestao     int      `json:"cod_questao"`
	TextoQuestao   string   `json:"texto_questao"`
	Status         string   `json:"status"`
	TotalRespostas int64    `json:"total_respostas"`
	Opcoes         []Option `json:"opcoes"`
}

// CreateQuestionRequest creates a question together with its option set
type CreateQuestionRequest struct {
	Texto  string   `json:"texto" binding:"required"`
	Status string   `json:"status"`
	Opcoes []string `json:"opcoes" binding:"required,min=1"`
}

// QuestionPatch carries partial question updates. A non-nil Opcoes replaces
// the option set wholesale.
type QuestionPatch struct {
	Texto  *string   `json:"texto"`
	Status *string   `json:"status"`
	Opcoes *[]string `json:"opcoes"`
}

// Fields returns the question column/value map of the supplied fields
// (options are handled separately)
func (p *QuestionPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Texto != nil {
		fields["texto_questao"] = *p.Texto
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	return fields
}
