package migration

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"gorm.io/gorm"
)

// Run bootstraps the schema. Tables are migrated referenced-side first so
// the FK constraints resolve.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Employee{},
		&domain.Classification{},
		&domain.Question{},
		&domain.Option{},
		&domain.Questionnaire{},
		&domain.QuestionnaireLink{},
		&domain.Evaluation{},
		&domain.Response{},
		&domain.Training{},
		&domain.EmployeeTraining{},
		&domain.EmployeeClassification{},
	)
}
