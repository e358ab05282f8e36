package services

import (
	"context"
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

// presetService implements the FilterPresetSvc interface. Presets are
// strictly per-user; ownership is enforced on every read and delete.
type presetService struct {
	BaseService
	presetRepo portsrepo.FilterPresetRepositoryFacade
}

// NewPresetService creates a new filter preset service.
func NewPresetService(repo portsrepo.FilterPresetRepositoryFacade) portssvc.FilterPresetSvc {
	return &presetService{presetRepo: repo}
}

var _ portssvc.FilterPresetSvc = (*presetService)(nil)

func (s *presetService) SavePreset(ctx context.Context, req dto.SaveFilterPresetRequest, userID string) (*domain.FilterPreset, error) {
	now := time.Now()
	preset := domain.FilterPreset{
		PresetID: uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		SectorID: req.SectorID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.presetRepo.SavePreset(ctx, preset); err != nil {
		s.LogError(ctx, err, "Failed to save filter preset", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save preset: %w", err)
	}

	s.LogInfo(ctx, "Filter preset saved",
		slog.String("preset_id", preset.PresetID),
		slog.String("name", preset.Name))
	return &preset, nil
}

func (s *presetService) GetPreset(ctx context.Context, presetID string, userID string) (*domain.FilterPreset, error) {
	preset, err := s.presetRepo.FindPresetByID(ctx, presetID)
	if err != nil {
		return nil, err
	}
	if preset.UserID != userID {
		// Hide other users' presets entirely rather than revealing they exist.
		return nil, apperrors.ErrNotFound
	}
	return preset, nil
}

func (s *presetService) ListPresets(ctx context.Context, userID string) ([]domain.FilterPreset, error) {
	presets, err := s.presetRepo.FindPresetsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

func (s *presetService) DeletePreset(ctx context.Context, presetID string, userID string) error {
	preset, err := s.presetRepo.FindPresetByID(ctx, presetID)
	if err != nil {
		return err
	}
	if preset.UserID != userID {
		return apperrors.ErrNotFound
	}
	if err := s.presetRepo.DeletePreset(ctx, presetID); err != nil {
		s.LogError(ctx, err, "Failed to delete preset", slog.String("preset_id", presetID))
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	s.LogInfo(ctx, "Filter preset deleted", slog.String("preset_id", presetID))
	return nil
}
