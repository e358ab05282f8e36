package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velstra/spendboard/internal/apperrors"
	"github.com/velstra/spendboard/internal/core/domain"
	portsrepo "github.com/velstra/spendboard/internal/core/ports/repositories"
	"github.com/velstra/spendboard/internal/models"
	"github.com/velstra/spendboard/internal/utils/mapping"
)

type PgxPresetRepository struct {
	db *pgxpool.Pool
}

func newPgxPresetRepository(db *pgxpool.Pool) portsrepo.FilterPresetRepositoryFacade {
	return &PgxPresetRepository{db: db}
}

// Ensure PgxPresetRepository implements portsrepo.FilterPresetRepositoryFacade
var _ portsrepo.FilterPresetRepositoryFacade = (*PgxPresetRepository)(nil)

const presetColumns = `preset_id, user_id, name, from_date, to_date, sector_id, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxPresetRepository) SavePreset(ctx context.Context, preset domain.FilterPreset) error {
	m := mapping.ToModelFilterPreset(preset)
	query := `
		INSERT INTO filter_presets (` + presetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.PresetID,
		m.UserID,
		m.Name,
		m.FromDate,
		m.ToDate,
		m.SectorID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	return nil
}

func (r *PgxPresetRepository) FindPresetByID(ctx context.Context, presetID string) (*domain.FilterPreset, error) {
	query := `
		SELECT ` + presetColumns + `
		FROM filter_presets
		WHERE preset_id = $1;
	`
	var m models.FilterPreset
	err := r.db.QueryRow(ctx, query, presetID).Scan(
		&m.PresetID,
		&m.UserID,
		&m.Name,
		&m.FromDate,
		&m.ToDate,
		&m.SectorID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preset by ID %s: %w", presetID, err)
	}
	preset := mapping.ToDomainFilterPreset(m)
	return &preset, nil
}

func (r *PgxPresetRepository) FindPresetsByUserID(ctx context.Context, userID string) ([]domain.FilterPreset, error) {
	query := `
		SELECT ` + presetColumns + `
		FROM filter_presets
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query presets: %w", err)
	}
	defer rows.Close()

	var ms []models.FilterPreset
	for rows.Next() {
		var m models.FilterPreset
		if err := rows.Scan(
			&m.PresetID,
			&m.UserID,
			&m.Name,
			&m.FromDate,
			&m.ToDate,
			&m.SectorID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan preset row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preset rows: %w", err)
	}
	return mapping.ToDomainFilterPresetSlice(ms), nil
}

func (r *PgxPresetRepository) DeletePreset(ctx context.Context, presetID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM filter_presets WHERE preset_id = $1;`, presetID)
	if err != nil {
		return fmt.Errorf("failed to delete preset %s: %w", presetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
