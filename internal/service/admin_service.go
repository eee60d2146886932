package service

import (
	"context"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/cache"
)

// AdminService handles maintenance operations
type AdminService interface {
	PurgeDatabase(ctx context.Context) ([]string, error)
}

type adminService struct {
	adminRepo repository.AdminRepository
	cache     cache.Service
}

// NewAdminService creates a new AdminService
func NewAdminService(adminRepo repository.AdminRepository, cacheService cache.Service) AdminService {
	return &adminService{adminRepo: adminRepo, cache: cacheService}
}

// PurgeDatabase empties every table and drops the cached dashboard
// aggregates, which are stale by definition afterwards
func (s *adminService) PurgeDatabase(ctx context.Context) ([]string, error) {
	purged, err := s.adminRepo.PurgeAll()
	if err != nil {
		return nil, err
	}
	if s.cache != nil && s.cache.IsAvailable() {
		_ = s.cache.InvalidateDashboard(ctx)
	}
	return purged, nil
}
