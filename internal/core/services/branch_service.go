package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/velstra/spendboard/internal/apperrors"
	"github.com/velstra/spendboard/internal/core/domain"
	portsrepo "github.com/velstra/spendboard/internal/core/ports/repositories"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/dto"
)

// branchService implements the BranchSvcFacade interface
type branchService struct {
	BaseService
	branchRepo portsrepo.BranchRepositoryFacade
	sectorRepo portsrepo.SectorRepositoryFacade
}

// NewBranchService creates a new branch service.
func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade, sectorRepo portsrepo.SectorRepositoryFacade, authorizer portssvc.RoleAuthorizerSvc) portssvc.BranchSvcFacade {
	svc := &branchService{branchRepo: branchRepo, sectorRepo: sectorRepo}
	svc.RoleAuthorizer = authorizer
	return svc
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

func (s *branchService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error) {
	if err := s.AuthorizeRole(ctx, creatorUserID, domain.RoleEditor); err != nil {
		return nil, err
	}

	// The parent sector must exist; branches never float free.
	if _, err := s.sectorRepo.FindSectorByID(ctx, req.SectorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("sector %s does not exist", req.SectorID))
		}
		return nil, fmt.Errorf("failed to validate sector: %w", err)
	}

	now := time.Now()
	branch := domain.Branch{
		BranchID: uuid.NewString(),
		SectorID: req.SectorID,
		Name:     req.Name,
		City:     req.City,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		s.LogError(ctx, err, "Failed to save branch", slog.String("branch_id", branch.BranchID))
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}
	return &branch, nil
}

func (s *branchService) UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest, updaterUserID string) (*domain.Branch, error) {
	if err := s.AuthorizeRole(ctx, updaterUserID, domain.RoleEditor); err != nil {
		return nil, err
	}

	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.City != nil {
		branch.City = *req.City
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}
	branch.LastUpdatedAt = time.Now()
	branch.LastUpdatedBy = updaterUserID

	if err := s.branchRepo.UpdateBranch(ctx, *branch); err != nil {
		s.LogError(ctx, err, "Failed to update branch", slog.String("branch_id", branchID))
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}
	return branch, nil
}

func (s *branchService) GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	return s.branchRepo.FindBranchByID(ctx, branchID)
}

func (s *branchService) ListBranches(ctx context.Context, sectorID string) ([]domain.Branch, error) {
	branches, err := s.branchRepo.ListBranches(ctx, sectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}
