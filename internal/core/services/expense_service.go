package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/velstra/spendboard/internal/core/domain"
	portsrepo "github.com/velstra/spendboard/internal/core/ports/repositories"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/dto"
	"github.com/velstra/spendboard/internal/ingest"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseRoleAuthorizer adds the role authorizer dependency
func WithExpenseRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) ExpenseServiceOption {
	return func(s *expenseService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewExpenseService creates a new expense service with the provided options
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{expenseRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeRole(ctx, creatorUserID, domain.RoleEditor); err != nil {
		s.LogError(ctx, err, "User not authorized to create expense",
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	now := time.Now()
	expenseID := uuid.NewString()

	expense := domain.Expense{
		ExpenseID:     expenseID,
		Description:   req.Description,
		Date:          req.Date,
		SectorID:      req.SectorID,
		BranchID:      req.BranchID,
		Amount:        req.Amount,
		MultiBranch:   req.MultiBranch,
		Amortized:     req.Amortized,
		AmortizeStart: req.AmortizeStart,
		AmortizeEnd:   req.AmortizeEnd,
		LineItems:     buildExpenseLineItems(req.LineItems),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expenseID),
		slog.Int("line_items", len(expense.LineItems)))
	return &expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeRole(ctx, updaterUserID, domain.RoleEditor); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Date != nil {
		expense.Date = req.Date
	}
	if req.SectorID != nil {
		expense.SectorID = *req.SectorID
	}
	if req.BranchID != nil {
		expense.BranchID = *req.BranchID
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.MultiBranch != nil {
		expense.MultiBranch = *req.MultiBranch
	}
	if req.Amortized != nil {
		expense.Amortized = *req.Amortized
	}
	if req.AmortizeStart != nil {
		expense.AmortizeStart = req.AmortizeStart
	}
	if req.AmortizeEnd != nil {
		expense.AmortizeEnd = req.AmortizeEnd
	}
	if req.LineItems != nil {
		expense.LineItems = buildExpenseLineItems(*req.LineItems)
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	expenses, newToken, err := s.expenseRepo.FindExpenses(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, newToken, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, requestingUserID string) error {
	if err := s.AuthorizeRole(ctx, requestingUserID, domain.RoleEditor); err != nil {
		return err
	}
	if err := s.expenseRepo.MarkExpenseDeleted(ctx, expenseID, time.Now(), requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// ImportExpenses normalizes raw legacy documents into canonical expenses and
// persists them in one batch. Malformed amounts or dates degrade to zero or
// nil rather than failing the import; reports surface them as skipped records.
func (s *expenseService) ImportExpenses(ctx context.Context, docs []map[string]any, creatorUserID string) ([]domain.Expense, error) {
	if err := s.AuthorizeRole(ctx, creatorUserID, domain.RoleEditor); err != nil {
		s.LogError(ctx, err, "User not authorized to import expenses",
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	now := time.Now()
	expenses := make([]domain.Expense, 0, len(docs))
	for _, doc := range docs {
		expense := ingest.NormalizeExpense(doc)
		if expense.ExpenseID == "" {
			expense.ExpenseID = uuid.NewString()
		}
		expense.AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		}
		expenses = append(expenses, expense)
	}

	if err := s.expenseRepo.SaveExpenses(ctx, expenses); err != nil {
		s.LogError(ctx, err, "Failed to save imported expenses", slog.Int("count", len(expenses)))
		return nil, fmt.Errorf("failed to import expenses: %w", err)
	}

	s.LogInfo(ctx, "Expenses imported",
		slog.Int("count", len(expenses)),
		slog.String("user_id", creatorUserID))
	return expenses, nil
}

// buildExpenseLineItems converts request line items to domain line items,
// generating ids for items that carry none.
func buildExpenseLineItems(items []dto.ExpenseLineItemRequest) []domain.ExpenseLineItem {
	out := make([]domain.ExpenseLineItem, len(items))
	for i, item := range items {
		lineItemID := item.LineItemID
		if lineItemID == "" {
			lineItemID = uuid.NewString()
		}
		out[i] = domain.ExpenseLineItem{
			LineItemID:         lineItemID,
			Description:        item.Description,
			Amount:             item.Amount,
			ContractID:         item.ContractID,
			ContractLineItemID: item.ContractLineItemID,
			SectorID:           item.SectorID,
			BranchIDs:          item.BranchIDs,
			Distribution:       item.Distribution,
			AssignedBranchID:   item.AssignedBranchID,
			BranchID:           item.BranchID,
		}
	}
	return out
}
