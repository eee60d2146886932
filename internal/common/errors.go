package common

import (
	"errors"
	"fmt"
	"strings"
)

// Business logic errors
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// Mutation errors
	ErrNoFields = errors.New("no fields to update")

	// Entity errors; all unwrap to ErrNotFound
	ErrEmployeeNotFound      = fmt.Errorf("funcionário não encontrado: %w", ErrNotFound)
	ErrQuestionNotFound      = fmt.Errorf("pergunta não encontrada: %w", ErrNotFound)
	ErrQuestionnaireNotFound = fmt.Errorf("questionário não encontrado: %w", ErrNotFound)
	ErrEvaluationNotFound    = fmt.Errorf("avaliação não encontrada: %w", ErrNotFound)
)

// ValidationError signals a rejected request payload (missing required
// field, evaluator equals evaluated subject, ...).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError signals a delete blocked by dependent rows. References
// carries the blocking counts per dependent kind so the caller can explain
// the block without a second query.
type ConflictError struct {
	Entity     string
	Reason     string
	References map[string]int64
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// TotalReferences sums the blocking counts across all dependent kinds
func (e *ConflictError) TotalReferences() int64 {
	var total int64
	for _, n := range e.References {
		total += n
	}
	return total
}

// DataAccessError wraps a storage/transport failure after rollback,
// preserving the underlying driver message.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// NewDataAccessError wraps err with the failed operation name
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

// IsForeignKeyViolation detects a restrict-style foreign key rejection
// coming back from Postgres, so guard callers can convert it into the same
// ConflictError shape as a pre-check hit. SQLSTATE 23503 is
// foreign_key_violation.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "sqlstate 23503") ||
		strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "restrict")
}
