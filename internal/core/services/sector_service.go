package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/velstra/spendboard/internal/core/domain"
	portsrepo "github.com/velstra/spendboard/internal/core/ports/repositories"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/dto"
)

// sectorService implements the SectorSvcFacade interface
type sectorService struct {
	BaseService
	sectorRepo portsrepo.SectorRepositoryFacade
}

// NewSectorService creates a new sector service.
func NewSectorService(repo portsrepo.SectorRepositoryFacade, authorizer portssvc.RoleAuthorizerSvc) portssvc.SectorSvcFacade {
	svc := &sectorService{sectorRepo: repo}
	svc.RoleAuthorizer = authorizer
	return svc
}

var _ portssvc.SectorSvcFacade = (*sectorService)(nil)

func (s *sectorService) CreateSector(ctx context.Context, req dto.CreateSectorRequest, creatorUserID string) (*domain.Sector, error) {
	if err := s.AuthorizeRole(ctx, creatorUserID, domain.RoleEditor); err != nil {
		return nil, err
	}

	now := time.Now()
	sector := domain.Sector{
		SectorID:    uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.sectorRepo.SaveSector(ctx, sector); err != nil {
		s.LogError(ctx, err, "Failed to save sector", slog.String("sector_id", sector.SectorID))
		return nil, fmt.Errorf("failed to create sector: %w", err)
	}
	return &sector, nil
}

func (s *sectorService) UpdateSector(ctx context.Context, sectorID string, req dto.UpdateSectorRequest, updaterUserID string) (*domain.Sector, error) {
	if err := s.AuthorizeRole(ctx, updaterUserID, domain.RoleEditor); err != nil {
		return nil, err
	}

	sector, err := s.sectorRepo.FindSectorByID(ctx, sectorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sector.Name = *req.Name
	}
	if req.Description != nil {
		sector.Description = *req.Description
	}
	if req.IsActive != nil {
		sector.IsActive = *req.IsActive
	}
	sector.LastUpdatedAt = time.Now()
	sector.LastUpdatedBy = updaterUserID

	if err := s.sectorRepo.UpdateSector(ctx, *sector); err != nil {
		s.LogError(ctx, err, "Failed to update sector", slog.String("sector_id", sectorID))
		return nil, fmt.Errorf("failed to update sector: %w", err)
	}
	return sector, nil
}

func (s *sectorService) GetSectorByID(ctx context.Context, sectorID string) (*domain.Sector, error) {
	return s.sectorRepo.FindSectorByID(ctx, sectorID)
}

func (s *sectorService) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	sectors, err := s.sectorRepo.ListSectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}
	return sectors, nil
}
