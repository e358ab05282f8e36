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

type PgxSectorRepository struct {
	db *pgxpool.Pool
}

func newPgxSectorRepository(db *pgxpool.Pool) portsrepo.SectorRepositoryFacade {
	return &PgxSectorRepository{db: db}
}

// Ensure PgxSectorRepository implements portsrepo.SectorRepositoryFacade
var _ portsrepo.SectorRepositoryFacade = (*PgxSectorRepository)(nil)

// Helper to convert domain.Sector to models.Sector
func toModelSector(d domain.Sector) models.Sector {
	return models.Sector{
		SectorID:    d.SectorID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: mapping.ToModelAuditFields(d.AuditFields),
	}
}

// Helper to convert models.Sector to domain.Sector
func toDomainSector(m models.Sector) domain.Sector {
	return domain.Sector{
		SectorID:    m.SectorID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: mapping.ToDomainAuditFields(m.AuditFields),
	}
}

func (r *PgxSectorRepository) SaveSector(ctx context.Context, sector domain.Sector) error {
	m := toModelSector(sector)
	query := `
		INSERT INTO sectors (sector_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.SectorID,
		m.Name,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save sector: %w", err)
	}
	return nil
}

func (r *PgxSectorRepository) UpdateSector(ctx context.Context, sector domain.Sector) error {
	m := toModelSector(sector)
	query := `
		UPDATE sectors
		SET name = $2, description = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE sector_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.SectorID,
		m.Name,
		m.Description,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update sector %s: %w", m.SectorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSectorRepository) FindSectorByID(ctx context.Context, sectorID string) (*domain.Sector, error) {
	query := `
		SELECT sector_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM sectors
		WHERE sector_id = $1;
	`
	var m models.Sector
	err := r.db.QueryRow(ctx, query, sectorID).Scan(
		&m.SectorID,
		&m.Name,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sector by ID %s: %w", sectorID, err)
	}
	sector := toDomainSector(m)
	return &sector, nil
}

func (r *PgxSectorRepository) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	query := `
		SELECT sector_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM sectors
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sectors: %w", err)
	}
	defer rows.Close()

	var sectors []domain.Sector
	for rows.Next() {
		var m models.Sector
		if err := rows.Scan(
			&m.SectorID,
			&m.Name,
			&m.Description,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sector row: %w", err)
		}
		sectors = append(sectors, toDomainSector(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sector rows: %w", err)
	}
	return sectors, nil
}
