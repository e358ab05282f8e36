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

type PgxBranchRepository struct {
	db *pgxpool.Pool
}

func newPgxBranchRepository(db *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{db: db}
}

// Ensure PgxBranchRepository implements portsrepo.BranchRepositoryFacade
var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

func toModelBranch(d domain.Branch) models.Branch {
	return models.Branch{
		BranchID:    d.BranchID,
		SectorID:    d.SectorID,
		Name:        d.Name,
		City:        d.City,
		IsActive:    d.IsActive,
		AuditFields: mapping.ToModelAuditFields(d.AuditFields),
	}
}

func toDomainBranch(m models.Branch) domain.Branch {
	return domain.Branch{
		BranchID:    m.BranchID,
		SectorID:    m.SectorID,
		Name:        m.Name,
		City:        m.City,
		IsActive:    m.IsActive,
		AuditFields: mapping.ToDomainAuditFields(m.AuditFields),
	}
}

func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	m := toModelBranch(branch)
	query := `
		INSERT INTO branches (branch_id, sector_id, name, city, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.BranchID,
		m.SectorID,
		m.Name,
		m.City,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save branch: %w", err)
	}
	return nil
}

func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	m := toModelBranch(branch)
	query := `
		UPDATE branches
		SET name = $2, city = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE branch_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.BranchID,
		m.Name,
		m.City,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update branch %s: %w", m.BranchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	query := `
		SELECT branch_id, sector_id, name, city, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM branches
		WHERE branch_id = $1;
	`
	var m models.Branch
	err := r.db.QueryRow(ctx, query, branchID).Scan(
		&m.BranchID,
		&m.SectorID,
		&m.Name,
		&m.City,
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
		return nil, fmt.Errorf("failed to find branch by ID %s: %w", branchID, err)
	}
	branch := toDomainBranch(m)
	return &branch, nil
}

// ListBranches returns branches ordered by name, optionally restricted to
// one sector (empty sectorID means all).
func (r *PgxBranchRepository) ListBranches(ctx context.Context, sectorID string) ([]domain.Branch, error) {
	query := `
		SELECT branch_id, sector_id, name, city, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM branches
	`
	args := []any{}
	if sectorID != "" {
		query += ` WHERE sector_id = $1`
		args = append(args, sectorID)
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var m models.Branch
		if err := rows.Scan(
			&m.BranchID,
			&m.SectorID,
			&m.Name,
			&m.City,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan branch row: %w", err)
		}
		branches = append(branches, toDomainBranch(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branch rows: %w", err)
	}
	return branches, nil
}
