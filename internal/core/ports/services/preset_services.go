package services

import (
	"context"

	"github.com/velstra/spendboard/internal/core/domain"
	"github.com/velstra/spendboard/internal/dto"
)

// FilterPresetSvc defines operations for saved reporting filters. The
// lifecycle is explicit: presets are saved, listed, fetched and deleted on
// user action only.
type FilterPresetSvc interface {
	// SavePreset stores a new preset owned by the user.
	SavePreset(ctx context.Context, req dto.SaveFilterPresetRequest, userID string) (*domain.FilterPreset, error)

	// GetPreset retrieves one preset; only the owner may read it.
	GetPreset(ctx context.Context, presetID string, userID string) (*domain.FilterPreset, error)

	// ListPresets lists the user's presets.
	ListPresets(ctx context.Context, userID string) ([]domain.FilterPreset, error)

	// DeletePreset removes a preset; only the owner may delete it.
	DeletePreset(ctx context.Context, presetID string, userID string) error
}
