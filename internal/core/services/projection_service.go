package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velstra/spendboard/internal/core/allocation"
	"github.com/velstra/spendboard/internal/core/domain"
	portsrepo "github.com/velstra/spendboard/internal/core/ports/repositories"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/utils"
)

// projectionService implements the ProjectionService interface. Every report
// recomputes from the full contract and expense history; nothing is cached
// between calls.
type projectionService struct {
	BaseService
	contractRepo portsrepo.ContractReader
	expenseRepo  portsrepo.ExpenseReader
	branchRepo   portsrepo.BranchReader
	now          func() time.Time
}

// ProjectionServiceOption is a functional option for configuring the projection service
type ProjectionServiceOption func(*projectionService)

// WithProjectionRoleAuthorizer adds the role authorizer dependency
func WithProjectionRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) ProjectionServiceOption {
	return func(s *projectionService) {
		s.RoleAuthorizer = authorizer
	}
}

// WithProjectionClock overrides the clock; used by tests to pin "today".
func WithProjectionClock(now func() time.Time) ProjectionServiceOption {
	return func(s *projectionService) {
		s.now = now
	}
}

// NewProjectionService creates a new projection service with the provided options
func NewProjectionService(contractRepo portsrepo.ContractReader, expenseRepo portsrepo.ExpenseReader, branchRepo portsrepo.BranchReader, options ...ProjectionServiceOption) portssvc.ProjectionService {
	svc := &projectionService{
		contractRepo: contractRepo,
		expenseRepo:  expenseRepo,
		branchRepo:   branchRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure projectionService implements the ProjectionService interface
var _ portssvc.ProjectionService = (*projectionService)(nil)

func (s *projectionService) BudgetProjection(ctx context.Context, from, to time.Time, sectorID string, userID string) (*domain.BudgetProjection, error) {
	if err := s.AuthorizeRole(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.FindAllContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contracts for projection: %w", err)
	}
	expenses, err := s.expenseRepo.FindAllExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for projection: %w", err)
	}

	today := s.now()
	spend := allocation.AggregateSpend(expenses, contracts, today)

	diag := &allocation.Diagnostics{}
	projection := allocation.ProjectCommitments(contracts, spend, allocation.NewWindow(from, to), today, sectorID, diag)

	s.LogInfo(ctx, "Budget projection computed",
		slog.Int("contracts", len(contracts)),
		slog.Int("expenses", len(expenses)),
		slog.Int("skipped", len(projection.Skipped)),
		slog.String("overdue_total", utils.FormatAmount(sumAmounts(projection.OverdueBySupplier))),
		slog.String("future_total", utils.FormatAmount(sumAmounts(projection.FutureBySupplier))))
	return &projection, nil
}

func (s *projectionService) ExpenseBranchShares(ctx context.Context, expenseID string, from, to time.Time, sectorID string, userID string) (*domain.BranchShareBreakdown, error) {
	if err := s.AuthorizeRole(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	branchSet, sectorBranches, err := s.loadBranchIndex(ctx)
	if err != nil {
		return nil, err
	}

	diag := &allocation.Diagnostics{}
	breakdown := allocation.BranchShares(*expense, branchSet, sectorBranches, allocation.NewWindow(from, to), sectorID, diag)

	s.LogDebug(ctx, "Branch shares computed",
		slog.String("expense_id", expenseID),
		slog.Int("branches", len(breakdown.ByBranch)),
		slog.Int("skipped", len(breakdown.Skipped)))
	return &breakdown, nil
}

// loadBranchIndex builds the branch id set and the per-sector branch id
// lists the share calculator resolves assignments against.
func (s *projectionService) loadBranchIndex(ctx context.Context) (map[string]struct{}, map[string][]string, error) {
	branches, err := s.branchRepo.ListBranches(ctx, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load branches: %w", err)
	}
	branchSet := make(map[string]struct{}, len(branches))
	sectorBranches := make(map[string][]string)
	for _, b := range branches {
		branchSet[b.BranchID] = struct{}{}
		sectorBranches[b.SectorID] = append(sectorBranches[b.SectorID], b.BranchID)
	}
	return branchSet, sectorBranches, nil
}

func sumAmounts(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}
