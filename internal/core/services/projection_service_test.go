package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/velstra/spendboard/internal/core/domain"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/core/services"
)

// --- Mock repositories for the projection service ---

type MockContractReader struct {
	mock.Mock
}

func (m *MockContractReader) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID)
	var c *domain.Contract
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Contract)
	}
	return c, args.Error(1)
}

func (m *MockContractReader) FindContracts(ctx context.Context, limit, offset int) ([]domain.Contract, error) {
	args := m.Called(ctx, limit, offset)
	var cs []domain.Contract
	if args.Get(0) != nil {
		cs = args.Get(0).([]domain.Contract)
	}
	return cs, args.Error(1)
}

func (m *MockContractReader) FindAllContracts(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	var cs []domain.Contract
	if args.Get(0) != nil {
		cs = args.Get(0).([]domain.Contract)
	}
	return cs, args.Error(1)
}

type MockExpenseReader struct {
	mock.Mock
}

func (m *MockExpenseReader) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var e *domain.Expense
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Expense)
	}
	return e, args.Error(1)
}

func (m *MockExpenseReader) FindExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var es []domain.Expense
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.Expense)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return es, token, args.Error(2)
}

func (m *MockExpenseReader) FindAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	var es []domain.Expense
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.Expense)
	}
	return es, args.Error(1)
}

type MockBranchReader struct {
	mock.Mock
}

func (m *MockBranchReader) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, branchID)
	var b *domain.Branch
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Branch)
	}
	return b, args.Error(1)
}

func (m *MockBranchReader) ListBranches(ctx context.Context, sectorID string) ([]domain.Branch, error) {
	args := m.Called(ctx, sectorID)
	var bs []domain.Branch
	if args.Get(0) != nil {
		bs = args.Get(0).([]domain.Branch)
	}
	return bs, args.Error(1)
}

// --- Test Suite ---

type ProjectionServiceTestSuite struct {
	suite.Suite
	contracts *MockContractReader
	expenses  *MockExpenseReader
	branches  *MockBranchReader
	service   portssvc.ProjectionService
}

func (suite *ProjectionServiceTestSuite) SetupTest() {
	suite.contracts = new(MockContractReader)
	suite.expenses = new(MockExpenseReader)
	suite.branches = new(MockBranchReader)
	suite.service = services.NewProjectionService(
		suite.contracts,
		suite.expenses,
		suite.branches,
		services.WithProjectionClock(func() time.Time {
			return time.Date(2025, 7, 2, 10, 30, 0, 0, time.UTC)
		}),
	)
}

func (suite *ProjectionServiceTestSuite) TestBudgetProjection_SplitsRemainderAcrossWindow() {
	ctx := context.Background()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	contracts := []domain.Contract{{
		ContractID: "C1",
		SupplierID: "SUP-A",
		LineItems: []domain.ContractLineItem{{
			LineItemID: "L1",
			ContractID: "C1",
			SectorID:   "marketing",
			Value:      decimal.NewFromInt(1200),
			StartDate:  &start,
			EndDate:    &end,
		}},
	}}

	suite.contracts.On("FindAllContracts", ctx).Return(contracts, nil).Once()
	suite.expenses.On("FindAllExpenses", ctx).Return([]domain.Expense{}, nil).Once()

	projection, err := suite.service.BudgetProjection(ctx, start, end, domain.SectorAll, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(projection)

	// 183 of 365 days have elapsed by July 2nd with nothing spent.
	suite.Equal("601.64", projection.OverdueBySupplier["SUP-A"].Round(2).String())
	suite.Equal("598.36", projection.FutureBySupplier["SUP-A"].Round(2).String())
	suite.Equal("598.36", projection.FutureBySector["marketing"].Round(2).String())
	suite.Empty(projection.Skipped)

	suite.contracts.AssertExpectations(suite.T())
	suite.expenses.AssertExpectations(suite.T())
}

func (suite *ProjectionServiceTestSuite) TestBudgetProjection_LinkedSpendReducesRemainder() {
	ctx := context.Background()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	contracts := []domain.Contract{{
		ContractID: "C1",
		SupplierID: "SUP-A",
		LineItems: []domain.ContractLineItem{{
			LineItemID: "L1",
			ContractID: "C1",
			SectorID:   "marketing",
			Value:      decimal.NewFromInt(1200),
			StartDate:  &start,
			EndDate:    &end,
		}},
	}}
	spendDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	expenses := []domain.Expense{{
		ExpenseID: "E1",
		Date:      &spendDate,
		Amount:    decimal.NewFromInt(1200),
		LineItems: []domain.ExpenseLineItem{{
			LineItemID:         "EL1",
			Amount:             decimal.NewFromInt(1200),
			ContractID:         "C1",
			ContractLineItemID: "L1",
		}},
	}}

	suite.contracts.On("FindAllContracts", ctx).Return(contracts, nil).Once()
	suite.expenses.On("FindAllExpenses", ctx).Return(expenses, nil).Once()

	projection, err := suite.service.BudgetProjection(ctx, start, end, domain.SectorAll, "user-1")

	suite.Require().NoError(err)
	// Fully spent: nothing remains to prorate, and the item is reported.
	suite.True(projection.OverdueBySupplier["SUP-A"].IsZero())
	suite.True(projection.FutureBySupplier["SUP-A"].IsZero())
	suite.Require().Len(projection.Skipped, 1)
	suite.Equal("L1", projection.Skipped[0].ID)
}

func (suite *ProjectionServiceTestSuite) TestExpenseBranchShares_TopLevelBranch() {
	ctx := context.Background()

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	expense := &domain.Expense{
		ExpenseID: "E1",
		Date:      &date,
		SectorID:  "marketing",
		BranchID:  "B1",
		Amount:    decimal.NewFromInt(150),
	}

	suite.expenses.On("FindExpenseByID", ctx, "E1").Return(expense, nil).Once()
	suite.branches.On("ListBranches", ctx, "").Return([]domain.Branch{
		{BranchID: "B1", SectorID: "marketing"},
		{BranchID: "B2", SectorID: "marketing"},
	}, nil).Once()

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	breakdown, err := suite.service.ExpenseBranchShares(ctx, "E1", from, to, domain.SectorAll, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(breakdown)
	suite.Equal("150", breakdown.ByBranch["B1"].String())
	suite.Empty(breakdown.Skipped)

	suite.expenses.AssertExpectations(suite.T())
	suite.branches.AssertExpectations(suite.T())
}

func TestProjectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectionServiceTestSuite))
}
