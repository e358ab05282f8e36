package domain

import "time"

// FilterPreset is a saved reporting filter (date window plus sector) owned by
// a user. Presets have an explicit save/apply/delete lifecycle; they are
// never applied implicitly.
type FilterPreset struct {
	PresetID string     `json:"presetID"` // Primary Key (e.g., UUID)
	UserID   string     `json:"userID"`   // FK -> users.user_id (owner)
	Name     string     `json:"name"`
	FromDate *time.Time `json:"fromDate,omitempty"`
	ToDate   *time.Time `json:"toDate,omitempty"`
	SectorID string     `json:"sectorID"` // SectorAll or empty means all sectors
	AuditFields
}
