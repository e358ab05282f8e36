package models

import "time"

// FilterPreset represents a saved reporting filter row.
type FilterPreset struct {
	PresetID string     `db:"preset_id"`
	UserID   string     `db:"user_id"`
	Name     string     `db:"name"`
	FromDate *time.Time `db:"from_date"`
	ToDate   *time.Time `db:"to_date"`
	SectorID string     `db:"sector_id"`
	AuditFields
}
