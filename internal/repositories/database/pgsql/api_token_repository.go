package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velstra/spendboard/internal/apperrors"
	"github.com/velstra/spendboard/internal/core/domain"
	portsrepo "github.com/velstra/spendboard/internal/core/ports/repositories"
	"github.com/velstra/spendboard/internal/models"
	"github.com/velstra/spendboard/internal/utils/mapping"
)

type PgxAPITokenRepository struct {
	db *pgxpool.Pool
}

func newPgxAPITokenRepository(db *pgxpool.Pool) portsrepo.APITokenRepository {
	return &PgxAPITokenRepository{db: db}
}

// Ensure PgxAPITokenRepository implements portsrepo.APITokenRepository
var _ portsrepo.APITokenRepository = (*PgxAPITokenRepository)(nil)

const apiTokenColumns = `id, user_id, name, token_hash, last_used_at, expires_at, created_at, updated_at`

func (r *PgxAPITokenRepository) scanToken(row pgx.Row) (*domain.APIToken, error) {
	var m models.APIToken
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.TokenHash,
		&m.LastUsedAt,
		&m.ExpiresAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	token := mapping.ToDomainAPIToken(m)
	return &token, nil
}

func (r *PgxAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	m := mapping.ToModelAPIToken(*token)
	query := `
		INSERT INTO api_tokens (id, user_id, name, token_hash, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		m.ID,
		m.UserID,
		m.Name,
		m.TokenHash,
		m.ExpiresAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create api token: %w", err)
	}
	return nil
}

func (r *PgxAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	query := `
		SELECT ` + apiTokenColumns + `
		FROM api_tokens
		WHERE id = $1 AND deleted_at IS NULL;
	`
	token, err := r.scanToken(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find api token by ID %s: %w", id, err)
	}
	return token, nil
}

func (r *PgxAPITokenRepository) FindByUserID(ctx context.Context, userID string) ([]domain.APIToken, error) {
	query := `
		SELECT ` + apiTokenColumns + `
		FROM api_tokens
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query api tokens for user %s: %w", userID, err)
	}
	defer rows.Close()

	var tokens []domain.APIToken
	for rows.Next() {
		token, err := r.scanToken(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan api token row: %w", err)
		}
		tokens = append(tokens, *token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating api token rows: %w", err)
	}
	return tokens, nil
}

func (r *PgxAPITokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.APIToken, error) {
	query := `
		SELECT ` + apiTokenColumns + `
		FROM api_tokens
		WHERE token_hash = $1 AND deleted_at IS NULL;
	`
	token, err := r.scanToken(r.db.QueryRow(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find api token by hash: %w", err)
	}
	return token, nil
}

func (r *PgxAPITokenRepository) Update(ctx context.Context, token *domain.APIToken) error {
	m := mapping.ToModelAPIToken(*token)
	query := `
		UPDATE api_tokens
		SET name = $2, last_used_at = $3, expires_at = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query,
		m.ID,
		m.Name,
		m.LastUsedAt,
		m.ExpiresAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update api token %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAPITokenRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE api_tokens
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete api token %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAPITokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `
		UPDATE api_tokens
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE expires_at IS NOT NULL AND expires_at < $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired api tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
