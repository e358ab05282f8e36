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
	"github.com/velstra/spendboard/internal/utils/pagination"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense and line item data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, description, date, sector_id, branch_id, amount, multi_branch, amortized, amortize_start, amortize_end, created_at, created_by, last_updated_at, last_updated_by`

const expenseLineItemColumns = `line_item_id, expense_id, description, amount, contract_id, contract_line_item_id, sector_id, branch_ids, distribution, assigned_branch_id, branch_id`

// SaveExpense inserts the expense and its line items in one transaction.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return r.SaveExpenses(ctx, []domain.Expense{expense})
}

// SaveExpenses inserts a batch of expenses with their line items in one
// transaction; either all documents land or none do.
func (r *PgxExpenseRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	batch := &pgx.Batch{}
	for _, expense := range expenses {
		m := mapping.ToModelExpense(expense)
		batch.Queue(query,
			m.ExpenseID,
			m.Description,
			m.Date,
			m.SectorID,
			m.BranchID,
			m.Amount,
			m.MultiBranch,
			m.Amortized,
			m.AmortizeStart,
			m.AmortizeEnd,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range expenses {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert expense: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to finish expense batch: %w", err)
	}

	for _, expense := range expenses {
		if err := r.insertLineItems(ctx, tx, expense.ExpenseID, expense.LineItems); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateExpense replaces the expense row and its full line item set.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET description = $2, date = $3, sector_id = $4, branch_id = $5, amount = $6,
		    multi_branch = $7, amortized = $8, amortize_start = $9, amortize_end = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE expense_id = $1 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query,
		m.ExpenseID,
		m.Description,
		m.Date,
		m.SectorID,
		m.BranchID,
		m.Amount,
		m.MultiBranch,
		m.Amortized,
		m.AmortizeStart,
		m.AmortizeEnd,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM expense_line_items WHERE expense_id = $1;`, expense.ExpenseID); err != nil {
		return fmt.Errorf("failed to clear line items for expense %s: %w", expense.ExpenseID, err)
	}
	if err := r.insertLineItems(ctx, tx, expense.ExpenseID, expense.LineItems); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxExpenseRepository) insertLineItems(ctx context.Context, tx pgx.Tx, expenseID string, items []domain.ExpenseLineItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO expense_line_items (` + expenseLineItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, item := range mapping.ToModelExpenseLineItems(expenseID, items) {
		batch.Queue(query,
			item.LineItemID,
			item.ExpenseID,
			item.Description,
			item.Amount,
			item.ContractID,
			item.ContractLineItemID,
			item.SectorID,
			item.BranchIDs,
			item.Distribution,
			item.AssignedBranchID,
			item.BranchID,
		)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert expense line item: %w", err)
		}
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_id = $1 AND deleted_at IS NULL;
	`
	var m models.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&m.ExpenseID,
		&m.Description,
		&m.Date,
		&m.SectorID,
		&m.BranchID,
		&m.Amount,
		&m.MultiBranch,
		&m.Amortized,
		&m.AmortizeStart,
		&m.AmortizeEnd,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	items, err := r.findLineItems(ctx, []string{expenseID})
	if err != nil {
		return nil, err
	}
	expense := mapping.ToDomainExpense(m, items[expenseID])
	return &expense, nil
}

// FindExpenses retrieves a page of expenses using token-based pagination
// ordered by creation time, newest first.
func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE deleted_at IS NULL
	`
	args := []any{}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeCompositeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewBadRequestError("invalid pagination token")
		}
		query += ` AND (created_at, expense_id) < ($1, $2)`
		args = append(args, lastCreatedAt, lastID)
	}
	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at DESC, expense_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses, err := r.collectExpenses(ctx, rows)
	if err != nil {
		return nil, nil, err
	}

	var newToken *string
	if len(expenses) > limit {
		expenses = expenses[:limit]
		last := expenses[limit-1]
		token := pagination.EncodeCompositeToken(last.CreatedAt, last.ExpenseID)
		newToken = &token
	}
	return expenses, newToken, nil
}

// FindAllExpenses loads the full expense history with line items; the
// allocation engine replays it on every report.
func (r *PgxExpenseRepository) FindAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE deleted_at IS NULL
		ORDER BY expense_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all expenses: %w", err)
	}
	defer rows.Close()

	return r.collectExpenses(ctx, rows)
}

func (r *PgxExpenseRepository) collectExpenses(ctx context.Context, rows pgx.Rows) ([]domain.Expense, error) {
	var ms []models.Expense
	ids := make([]string, 0)
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID,
			&m.Description,
			&m.Date,
			&m.SectorID,
			&m.BranchID,
			&m.Amount,
			&m.MultiBranch,
			&m.Amortized,
			&m.AmortizeStart,
			&m.AmortizeEnd,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, m)
		ids = append(ids, m.ExpenseID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	itemsByExpense, err := r.findLineItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	expenses := make([]domain.Expense, len(ms))
	for i, m := range ms {
		expenses[i] = mapping.ToDomainExpense(m, itemsByExpense[m.ExpenseID])
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) findLineItems(ctx context.Context, expenseIDs []string) (map[string][]models.ExpenseLineItem, error) {
	out := make(map[string][]models.ExpenseLineItem, len(expenseIDs))
	if len(expenseIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT ` + expenseLineItemColumns + `
		FROM expense_line_items
		WHERE expense_id = ANY($1)
		ORDER BY expense_id, line_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, expenseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.ExpenseLineItem
		if err := rows.Scan(
			&m.LineItemID,
			&m.ExpenseID,
			&m.Description,
			&m.Amount,
			&m.ContractID,
			&m.ContractLineItemID,
			&m.SectorID,
			&m.BranchIDs,
			&m.Distribution,
			&m.AssignedBranchID,
			&m.BranchID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense line item row: %w", err)
		}
		out[m.ExpenseID] = append(out[m.ExpenseID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense line item rows: %w", err)
	}
	return out, nil
}

func (r *PgxExpenseRepository) MarkExpenseDeleted(ctx context.Context, expenseID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE expenses
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE expense_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, expenseID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark expense %s deleted: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
