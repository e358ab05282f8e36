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

type PgxContractRepository struct {
	BaseRepository
}

// newPgxContractRepository creates a new repository for contract and line item data.
func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxContractRepository implements portsrepo.ContractRepositoryFacade
var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

const contractColumns = `contract_id, number, supplier_id, signed_at, description, created_at, created_by, last_updated_at, last_updated_by`

const contractLineItemColumns = `line_item_id, contract_id, supplier_id, sector_id, branch_id, description, value, start_date, end_date`

// SaveContract inserts the contract and its line items in one transaction.
func (r *PgxContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelContract := mapping.ToModelContract(contract)
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		modelContract.ContractID,
		modelContract.Number,
		modelContract.SupplierID,
		modelContract.SignedAt,
		modelContract.Description,
		modelContract.CreatedAt,
		modelContract.CreatedBy,
		modelContract.LastUpdatedAt,
		modelContract.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contract %s: %w", modelContract.ContractID, err)
	}

	if err := r.insertLineItems(ctx, tx, contract.ContractID, contract.LineItems); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateContract replaces the contract row and its full line item set.
func (r *PgxContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelContract := mapping.ToModelContract(contract)
	query := `
		UPDATE contracts
		SET number = $2, supplier_id = $3, signed_at = $4, description = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE contract_id = $1 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query,
		modelContract.ContractID,
		modelContract.Number,
		modelContract.SupplierID,
		modelContract.SignedAt,
		modelContract.Description,
		modelContract.LastUpdatedAt,
		modelContract.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract %s: %w", modelContract.ContractID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Line items are replaced wholesale; they carry no audit trail of their own.
	if _, err := tx.Exec(ctx, `DELETE FROM contract_line_items WHERE contract_id = $1;`, contract.ContractID); err != nil {
		return fmt.Errorf("failed to clear line items for contract %s: %w", contract.ContractID, err)
	}
	if err := r.insertLineItems(ctx, tx, contract.ContractID, contract.LineItems); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxContractRepository) insertLineItems(ctx context.Context, tx pgx.Tx, contractID string, items []domain.ContractLineItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO contract_line_items (` + contractLineItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, item := range mapping.ToModelContractLineItems(contractID, items) {
		batch.Queue(query,
			item.LineItemID,
			item.ContractID,
			item.SupplierID,
			item.SectorID,
			item.BranchID,
			item.Description,
			item.Value,
			item.StartDate,
			item.EndDate,
		)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert contract line item: %w", err)
		}
	}
	return nil
}

func (r *PgxContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE contract_id = $1 AND deleted_at IS NULL;
	`
	var m models.Contract
	err := r.Pool.QueryRow(ctx, query, contractID).Scan(
		&m.ContractID,
		&m.Number,
		&m.SupplierID,
		&m.SignedAt,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract by ID %s: %w", contractID, err)
	}

	items, err := r.findLineItems(ctx, []string{contractID})
	if err != nil {
		return nil, err
	}
	contract := mapping.ToDomainContract(m, items[contractID])
	return &contract, nil
}

func (r *PgxContractRepository) FindContracts(ctx context.Context, limit int, offset int) ([]domain.Contract, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, contract_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer rows.Close()

	return r.collectContracts(ctx, rows)
}

// FindAllContracts loads every contract with line items. The allocation
// engine always replays the full set, so there is no pagination here.
func (r *PgxContractRepository) FindAllContracts(ctx context.Context) ([]domain.Contract, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE deleted_at IS NULL
		ORDER BY contract_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all contracts: %w", err)
	}
	defer rows.Close()

	return r.collectContracts(ctx, rows)
}

func (r *PgxContractRepository) collectContracts(ctx context.Context, rows pgx.Rows) ([]domain.Contract, error) {
	var ms []models.Contract
	ids := make([]string, 0)
	for rows.Next() {
		var m models.Contract
		if err := rows.Scan(
			&m.ContractID,
			&m.Number,
			&m.SupplierID,
			&m.SignedAt,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		ms = append(ms, m)
		ids = append(ids, m.ContractID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contract rows: %w", err)
	}

	itemsByContract, err := r.findLineItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	contracts := make([]domain.Contract, len(ms))
	for i, m := range ms {
		contracts[i] = mapping.ToDomainContract(m, itemsByContract[m.ContractID])
	}
	return contracts, nil
}

// findLineItems loads the line item rows for the given contracts, grouped by
// contract id.
func (r *PgxContractRepository) findLineItems(ctx context.Context, contractIDs []string) (map[string][]models.ContractLineItem, error) {
	out := make(map[string][]models.ContractLineItem, len(contractIDs))
	if len(contractIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT ` + contractLineItemColumns + `
		FROM contract_line_items
		WHERE contract_id = ANY($1)
		ORDER BY contract_id, line_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, contractIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.ContractLineItem
		if err := rows.Scan(
			&m.LineItemID,
			&m.ContractID,
			&m.SupplierID,
			&m.SectorID,
			&m.BranchID,
			&m.Description,
			&m.Value,
			&m.StartDate,
			&m.EndDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract line item row: %w", err)
		}
		out[m.ContractID] = append(out[m.ContractID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contract line item rows: %w", err)
	}
	return out, nil
}

func (r *PgxContractRepository) MarkContractDeleted(ctx context.Context, contractID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE contracts
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE contract_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, contractID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark contract %s deleted: %w", contractID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
