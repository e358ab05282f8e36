package dto

import (
	"time"

	"github.com/velstra/spendboard/internal/core/domain"
)

// SaveFilterPresetRequest defines the data needed to save a reporting filter
// preset. Presets are always saved explicitly; there is no implicit capture
// of the current filter state.
type SaveFilterPresetRequest struct {
	Name     string     `json:"name" binding:"required"`
	FromDate *time.Time `json:"fromDate"`
	ToDate   *time.Time `json:"toDate"`
	SectorID string     `json:"sectorID"`
}

// FilterPresetResponse is the API representation of a filter preset.
type FilterPresetResponse struct {
	PresetID string     `json:"presetID"`
	Name     string     `json:"name"`
	FromDate *time.Time `json:"fromDate,omitempty"`
	ToDate   *time.Time `json:"toDate,omitempty"`
	SectorID string     `json:"sectorID,omitempty"`
}

// ToFilterPresetResponse converts a domain preset to its API representation.
func ToFilterPresetResponse(p *domain.FilterPreset) FilterPresetResponse {
	return FilterPresetResponse{
		PresetID: p.PresetID,
		Name:     p.Name,
		FromDate: p.FromDate,
		ToDate:   p.ToDate,
		SectorID: p.SectorID,
	}
}

// ListFilterPresetsResponse wraps the list of presets.
type ListFilterPresetsResponse struct {
	Presets []FilterPresetResponse `json:"presets"`
}

// ToListFilterPresetsResponse converts domain presets to the list DTO.
func ToListFilterPresetsResponse(presets []domain.FilterPreset) ListFilterPresetsResponse {
	out := ListFilterPresetsResponse{Presets: make([]FilterPresetResponse, len(presets))}
	for i := range presets {
		out.Presets[i] = ToFilterPresetResponse(&presets[i])
	}
	return out
}
