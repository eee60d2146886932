package repository

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"gorm.io/gorm"
)

// ClassificationRepository classification taxonomy access interface
type ClassificationRepository interface {
	List() ([]domain.Classification, error)
}

type classificationRepository struct {
	db *gorm.DB
}

// NewClassificationRepository creates a new ClassificationRepository
func NewClassificationRepository(db *gorm.DB) ClassificationRepository {
	return &classificationRepository{db: db}
}

// List returns all classifications ordered by name
func (r *classificationRepository) List() ([]domain.Classification, error) {
	var classifications []domain.Classification
	if err := r.db.Order("nome").Find(&classifications).Error; err != nil {
		return nil, classify("list classifications", err)
	}
	return classifications, nil
}
