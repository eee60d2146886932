package repository

import (
	"errors"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"gorm.io/gorm"
)

// classify maps a storage failure onto the shared taxonomy: zero-row reads
// become NotFound, everything else a DataAccessError keeping the driver
// message. GORM has already rolled back the enclosing transaction when a
// Transaction callback returns an error.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrNoFields) {
		return err
	}
	var dae *common.DataAccessError
	if errors.As(err, &dae) {
		return err
	}
	return common.NewDataAccessError(op, err)
}
