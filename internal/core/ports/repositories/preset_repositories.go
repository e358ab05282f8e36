package repositories

import (
	"context"

	"github.com/velstra/spendboard/internal/core/domain"
)

// FilterPresetRepositoryFacade is the settings repository for saved reporting
// filters. Presets are loaded and stored only on explicit user action; there
// is no ambient shared state.
type FilterPresetRepositoryFacade interface {
	// SavePreset persists a new preset.
	SavePreset(ctx context.Context, preset domain.FilterPreset) error

	// FindPresetByID retrieves a preset by id.
	FindPresetByID(ctx context.Context, presetID string) (*domain.FilterPreset, error)

	// FindPresetsByUserID retrieves all presets owned by a user.
	FindPresetsByUserID(ctx context.Context, userID string) ([]domain.FilterPreset, error)

	// DeletePreset removes a preset.
	DeletePreset(ctx context.Context, presetID string) error
}
