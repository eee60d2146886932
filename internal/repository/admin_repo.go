package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// purgeOrder lists every table dependents-first so the truncation never
// trips a restrict FK even with triggers disabled
var purgeOrder = []string{
	"resposta",
	"avaliacao",
	"questionario_questao",
	"questionario",
	"opcao",
	"questao",
	"funcionario_treinamento",
	"funcionario_classificacao",
	"funcionario",
	"treinamento",
	"classificacao",
}

// AdminRepository maintenance operations
type AdminRepository interface {
	PurgeAll() ([]string, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// PurgeAll empties every table and resets the serial sequences. FK triggers
// are suspended for the session via replica replication role and restored
// before commit; the whole purge is one transaction.
func (r *adminRepository) PurgeAll() ([]string, error) {
	purged := make([]string, 0, len(purgeOrder))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SET session_replication_role = 'replica'").Error; err != nil {
			return err
		}
		for _, table := range purgeOrder {
			stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
			purged = append(purged, table)
		}
		return tx.Exec("SET session_replication_role = 'origin'").Error
	})
	if err != nil {
		return nil, classify("purge database", err)
	}
	return purged, nil
}
