package domain

import "time"

// Training is a certification course employees attend
// Table: treinamento
type Training struct {
	CodTreinamento int        `gorm:"column:cod_treinamento;primaryKey;autoIncrement" json:"cod_treinamento"`
	Nome           string     `gorm:"column:nome" json:"nome"`
	DataRealizacao *time.Time `gorm:"column:data_realizacao" json:"data_realizacao,omitempty"`
	Validade       *time.Time `gorm:"column:validade" json:"validade,omitempty"`
	Local          string     `gorm:"column:local" json:"local,omitempty"`
}

// TableName specifies the table name for Training model
func (Training) TableName() string {
	return "treinamento"
}

// EmployeeTraining links an employee to a training with the issued
// certificate number. Mutations require both foreign keys.
// Table: funcionario_treinamento
type EmployeeTraining struct {
	FuncionarioCPF string `gorm:"column:funcionario_cpf;primaryKey" json:"funcionario_cpf"`
	TreinamentoCod int    `gorm:"column:treinamento_cod;primaryKey" json:"treinamento_cod"`
	NCertificado   string `gorm:"column:n_certificado" json:"n_certificado,omitempty"`
}

// TableName specifies the table name for EmployeeTraining model
func (EmployeeTraining) TableName() string {
	return "funcionario_treinamento"
}

// EmployeeClassification links an employee to a classification
// Table: funcionario_classificacao
type EmployeeClassification struct {
	FuncionarioCPF   string `gorm:"column:funcionario_cpf;primaryKey" json:"funcionario_cpf"`
	ClassificacaoCod int    `gorm:"column:classificacao_cod;primaryKey" json:"classificacao_cod"`
}

// TableName specifies the table name for EmployeeClassification model
func (EmployeeClassification) TableName() string {
	return "funcionario_classificacao"
}

// EmployeeTrainingPatch updates a link's certificate number; both keys are
// required to address the row
type EmployeeTrainingPatch struct {
	FuncionarioCPF string  `json:"funcionario_cpf" binding:"required"`
	TreinamentoCod int     `json:"treinamento_cod" binding:"required"`
	NCertificado   *string `json:"n_certificado"`
}

// Evaluator is an active employee holding at least one training certificate
type Evaluator struct {
	CPF                string `json:"cpf"`
	Nome               string `json:"nome"`
	Email              string `json:"email"`
	Setor              string `json:"setor"`
	Status             string `json:"status"`
	TotalCertificados  int64  `json:"total_certificados"`
	UltimoCertificado  string `json:"ultimo_certificado"`
	TreinamentosUnicos int64  `json:"treinamentos_unicos"`
}

// Certificate is one training certificate held by an evaluator
type Certificate struct {
	CodTreinamento  int        `json:"cod_treinamento"`
	NomeTreinamento string     `json:"nome_treinamento"`
	DataRealizacao  *time.Time `json:"data_realizacao"`
	Validade        *time.Time `json:"validade"`
	Local           string     `json:"local"`
	NCertificado    string     `json:"n_certificado"`
}

// TrainingRow is one training listed on an employee profile
type TrainingRow struct {
	CodTreinamento int        `json:"cod_treinamento"`
	Nome           string     `json:"nome"`
	DataRealizacao *time.Time `json:"data_realizacao"`
	Validade       *time.Time `json:"validade"`
	Local          string     `json:"local"`
	NCertificado   string     `json:"n_certificado"`
}
