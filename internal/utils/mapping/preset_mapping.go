package mapping

import (
	"github.com/velstra/spendboard/internal/core/domain"
	"github.com/velstra/spendboard/internal/models"
)

// ToModelFilterPreset converts a domain FilterPreset to a model FilterPreset
func ToModelFilterPreset(d domain.FilterPreset) models.FilterPreset {
	return models.FilterPreset{
		PresetID:    d.PresetID,
		UserID:      d.UserID,
		Name:        d.Name,
		FromDate:    d.FromDate,
		ToDate:      d.ToDate,
		SectorID:    d.SectorID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFilterPreset converts a model FilterPreset to a domain FilterPreset
func ToDomainFilterPreset(m models.FilterPreset) domain.FilterPreset {
	return domain.FilterPreset{
		PresetID:    m.PresetID,
		UserID:      m.UserID,
		Name:        m.Name,
		FromDate:    m.FromDate,
		ToDate:      m.ToDate,
		SectorID:    m.SectorID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFilterPresetSlice converts a slice of model presets to domain presets
func ToDomainFilterPresetSlice(ms []models.FilterPreset) []domain.FilterPreset {
	ds := make([]domain.FilterPreset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFilterPreset(m)
	}
	return ds
}
