package domain

// Employee status values. Stored as free text in the legacy schema and
// matched case-insensitively.
const (
	EmployeeStatusActive        = "Ativo"
	EmployeeStatusInactive      = "Inativo"
	EmployeeStatusInTermination = "Em Rescisão"
)

// Employee represents an employee
// Table: funcionario (legacy Model 2 schema)
type Employee struct {
	CPF    string `gorm:"column:cpf;primaryKey" json:"cpf"`
	Nome   string `gorm:"column:nome" json:"nome"`
	Email  string `gorm:"column:email" json:"email"`
	Setor  string `gorm:"column:setor" json:"setor,omitempty"`
	CTPS   string `gorm:"column:ctps" json:"ctps,omitempty"`
	Tipo   string `gorm:"column:tipo" json:"tipo,omitempty"`
	Status string `gorm:"column:status" json:"status"`
}

// TableName specifies the table name for Employee model
func (Employee) TableName() string {
	return "funcionario"
}

// CreateEmployeeRequest is the payload for HR onboarding
type CreateEmployeeRequest struct {
	Nome   string `json:"nome" binding:"required"`
	CPF    string `json:"cpf" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Setor  string `json:"setor"`
	CTPS   string `json:"ctps"`
	Tipo   string `json:"tipo"`
	Status string `json:"status"`
}

// EmployeePatch carries partial employee updates. Pointer fields double as
// presence flags; the CPF is immutable and deliberately absent.
type EmployeePatch struct {
	Nome   *string `json:"nome"`
	Email  *string `json:"email"`
	Setor  *string `json:"setor"`
	CTPS   *string `json:"ctps"`
	Tipo   *string `json:"tipo"`
	Status *string `json:"status"`
}

// Fields returns the column/value map of the supplied fields
func (p *EmployeePatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Nome != nil {
		fields["nome"] = *p.Nome
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Setor != nil {
		fields["setor"] = *p.Setor
	}
	if p.CTPS != nil {
		fields["ctps"] = *p.CTPS
	}
	if p.Tipo != nil {
		fields["tipo"] = *p.Tipo
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	return fields
}

// EmployeeStats is the HR statistics aggregate
type EmployeeStats struct {
	Total       int64 `json:"total"`
	Ativos      int64 `json:"ativos"`
	EmRescisao  int64 `json:"em_rescisao"`
}

// Sector is a distinct sector label
type Sector struct {
	Nome string `json:"nome"`
}
