package allocation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/velstra/spendboard/internal/core/allocation"
	"github.com/velstra/spendboard/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func TestAggregateSpend(t *testing.T) {
	contracts := []domain.Contract{
		{
			ContractID: "C1",
			SupplierID: "SUP1",
			LineItems: []domain.ContractLineItem{
				{LineItemID: "LI1", ContractID: "C1", Value: dec(1000)},
				{LineItemID: "LI2", ContractID: "C1", Value: dec(500)},
			},
		},
	}
	today := day(2025, time.July, 1)

	expenses := []domain.Expense{
		{
			ExpenseID: "E1",
			Date:      dayPtr(2025, time.March, 10),
			LineItems: []domain.ExpenseLineItem{
				{Amount: dec(100), ContractID: "C1", ContractLineItemID: "LI1"},
				{Amount: dec(40), ContractID: "C1"}, // fallback: contract only
			},
		},
		{
			// Future-dated: counts in totals, not in spend-to-date.
			ExpenseID: "E2",
			Date:      dayPtr(2025, time.December, 1),
			LineItems: []domain.ExpenseLineItem{
				{Amount: dec(25), ContractLineItemID: "LI1"}, // contract resolved via line item
			},
		},
		{
			// Undated: counts in totals, never in spend-to-date.
			ExpenseID: "E3",
			LineItems: []domain.ExpenseLineItem{
				{Amount: dec(10), ContractID: "C1"},
			},
		},
		{
			// No contract reference anywhere: ignored entirely.
			ExpenseID: "E4",
			Date:      dayPtr(2025, time.March, 11),
			LineItems: []domain.ExpenseLineItem{
				{Amount: dec(999)},
			},
		},
	}

	totals := allocation.AggregateSpend(expenses, contracts, today)

	assert.True(t, totals.ByContract["C1"].Equal(dec(175)), "contract total, got %s", totals.ByContract["C1"])
	assert.True(t, totals.ByLineItem["LI1"].Equal(dec(125)))
	assert.True(t, totals.ByLineItemToDate["LI1"].Equal(dec(100)), "future-dated spend must not count to date")
	assert.True(t, totals.ByLineItem["LI2"].IsZero())

	fb := totals.ContractFallback["C1"]
	assert.True(t, fb.Total.Equal(dec(50)))
	assert.True(t, fb.ToDate.Equal(dec(40)), "undated spend must not count to date")
}

func TestAggregateSpend_Empty(t *testing.T) {
	totals := allocation.AggregateSpend(nil, nil, day(2025, time.January, 1))
	assert.Empty(t, totals.ByContract)
	assert.Empty(t, totals.ByLineItem)
	assert.Empty(t, totals.ByLineItemToDate)
	assert.Empty(t, totals.ContractFallback)
}
