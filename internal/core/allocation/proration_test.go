package allocation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velstra/spendboard/internal/core/allocation"
	"github.com/velstra/spendboard/internal/core/domain"
)

// yearContract builds a single-supplier contract with one line item spanning
// calendar year 2025 (365 days inclusive).
func yearContract(value decimal.Decimal) []domain.Contract {
	return []domain.Contract{
		{
			ContractID: "C1",
			SupplierID: "SUP1",
			LineItems: []domain.ContractLineItem{
				{
					LineItemID: "LI1",
					ContractID: "C1",
					SectorID:   "S1",
					Value:      value,
					StartDate:  dayPtr(2025, time.January, 1),
					EndDate:    dayPtr(2025, time.December, 31),
				},
			},
		},
	}
}

func fullYearWindow() allocation.Window {
	return allocation.NewWindow(day(2025, time.January, 1), day(2025, time.December, 31))
}

func spendOn(lineItemID string, amount decimal.Decimal, date time.Time, contracts []domain.Contract, today time.Time) allocation.SpendTotals {
	expenses := []domain.Expense{
		{
			ExpenseID: "E1",
			Date:      &date,
			LineItems: []domain.ExpenseLineItem{
				{Amount: amount, ContractID: "C1", ContractLineItemID: lineItemID},
			},
		},
	}
	return allocation.AggregateSpend(expenses, contracts, today)
}

func TestProjectCommitments_PacingSplit(t *testing.T) {
	// Value 1200 over 365 days, nothing spent, today is day 183 of the
	// period: 183 days are overdue at ~3.288/day, the rest is future.
	contracts := yearContract(dec(1200))
	today := day(2025, time.July, 2)
	totals := allocation.AggregateSpend(nil, contracts, today)

	proj := allocation.ProjectCommitments(contracts, totals, fullYearWindow(), today, "", nil)

	overdue := proj.OverdueBySupplier["SUP1"]
	future := proj.FutureBySupplier["SUP1"]
	assert.InDelta(t, 601.64, overdue.InexactFloat64(), 0.01)
	assert.InDelta(t, 598.36, future.InexactFloat64(), 0.01)
	assert.InDelta(t, 1200, overdue.Add(future).InexactFloat64(), 0.01,
		"full window and zero spend must account for the whole value")
	assert.InDelta(t, 598.36, proj.FutureBySector["S1"].InexactFloat64(), 0.01)
}

func TestProjectCommitments_FullyPacedSpend(t *testing.T) {
	// Same contract, but 601.64 already spent by today: no overdue left,
	// future unchanged.
	contracts := yearContract(dec(1200))
	today := day(2025, time.July, 2)
	totals := spendOn("LI1", dec(601.64), day(2025, time.June, 30), contracts, today)

	proj := allocation.ProjectCommitments(contracts, totals, fullYearWindow(), today, "", nil)

	assert.InDelta(t, 0, proj.OverdueBySupplier["SUP1"].InexactFloat64(), 0.01)
	assert.InDelta(t, 598.36, proj.FutureBySupplier["SUP1"].InexactFloat64(), 0.01)
}

func TestProjectCommitments_NothingRemaining(t *testing.T) {
	contracts := yearContract(dec(1200))
	today := day(2025, time.July, 2)
	totals := spendOn("LI1", dec(1200), day(2025, time.June, 30), contracts, today)

	diag := &allocation.Diagnostics{}
	proj := allocation.ProjectCommitments(contracts, totals, fullYearWindow(), today, "", diag)

	assert.Empty(t, proj.OverdueBySupplier)
	assert.Empty(t, proj.FutureBySupplier)
	require.Len(t, proj.Skipped, 1)
	assert.Equal(t, "no remaining value", proj.Skipped[0].Reason)
}

func TestProjectCommitments_NoFutureAfterPeriodEnd(t *testing.T) {
	contracts := yearContract(dec(1200))
	today := day(2026, time.January, 5)
	totals := allocation.AggregateSpend(nil, contracts, today)

	proj := allocation.ProjectCommitments(contracts, totals, fullYearWindow(), today, "", nil)

	assert.Empty(t, proj.FutureBySupplier, "nothing is future once the period has elapsed")
	assert.InDelta(t, 1200, proj.OverdueBySupplier["SUP1"].InexactFloat64(), 0.01)
}

func TestProjectCommitments_Conservation(t *testing.T) {
	tests := []struct {
		name   string
		spent  decimal.Decimal
		today  time.Time
		window allocation.Window
	}{
		{"unspent mid year", dec(0), day(2025, time.July, 2), fullYearWindow()},
		{"half spent mid year", dec(600), day(2025, time.July, 2), fullYearWindow()},
		{"overspent pacing", dec(900), day(2025, time.March, 1), fullYearWindow()},
		{"partial window", dec(200), day(2025, time.May, 10), allocation.NewWindow(day(2025, time.March, 1), day(2025, time.August, 31))},
		{"window before today", dec(0), day(2025, time.December, 1), allocation.NewWindow(day(2025, time.January, 1), day(2025, time.March, 31))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contracts := yearContract(dec(1200))
			totals := spendOn("LI1", tt.spent, day(2025, time.January, 15), contracts, tt.today)

			proj := allocation.ProjectCommitments(contracts, totals, tt.window, tt.today, "", nil)

			remaining := dec(1200).Sub(tt.spent).InexactFloat64()
			allocated := proj.OverdueBySupplier["SUP1"].Add(proj.FutureBySupplier["SUP1"]).InexactFloat64()
			assert.LessOrEqual(t, allocated, remaining+0.01,
				"engine must never allocate more than what remains on the contract")
		})
	}
}

func TestProjectCommitments_SkipsInvalidLineItems(t *testing.T) {
	contracts := []domain.Contract{
		{
			ContractID: "C1",
			SupplierID: "SUP1",
			LineItems: []domain.ContractLineItem{
				{LineItemID: "LI1", ContractID: "C1", Value: dec(100)}, // no dates
				{LineItemID: "LI2", ContractID: "C1", Value: dec(0), StartDate: dayPtr(2025, time.January, 1), EndDate: dayPtr(2025, time.December, 31)},
				{
					// Fully outside the window.
					LineItemID: "LI3", ContractID: "C1", Value: dec(100),
					StartDate: dayPtr(2024, time.January, 1), EndDate: dayPtr(2024, time.June, 30),
				},
			},
		},
	}
	today := day(2025, time.July, 2)
	totals := allocation.AggregateSpend(nil, contracts, today)

	diag := &allocation.Diagnostics{}
	proj := allocation.ProjectCommitments(contracts, totals, fullYearWindow(), today, "", diag)

	assert.Empty(t, proj.OverdueBySupplier)
	assert.Empty(t, proj.FutureBySupplier)
	require.Len(t, proj.Skipped, 3)
	reasons := []string{proj.Skipped[0].Reason, proj.Skipped[1].Reason, proj.Skipped[2].Reason}
	assert.Contains(t, reasons, "missing start or end date")
	assert.Contains(t, reasons, "no remaining value")
	assert.Contains(t, reasons, "outside reporting window")
}

func TestProjectCommitments_FallbackSpendProration(t *testing.T) {
	// Two line items worth 100 and 300; 200 of contract-level spend is
	// prorated 25%/75%, leaving 50 and 150. With today before the window the
	// whole remainder is future.
	contracts := []domain.Contract{
		{
			ContractID: "C1",
			SupplierID: "SUP1",
			LineItems: []domain.ContractLineItem{
				{LineItemID: "LI1", ContractID: "C1", SectorID: "S1", Value: dec(100), StartDate: dayPtr(2025, time.January, 1), EndDate: dayPtr(2025, time.December, 31)},
				{LineItemID: "LI2", ContractID: "C1", SectorID: "S2", Value: dec(300), StartDate: dayPtr(2025, time.January, 1), EndDate: dayPtr(2025, time.December, 31)},
			},
		},
	}
	today := day(2024, time.December, 1)
	expenses := []domain.Expense{
		{
			ExpenseID: "E1",
			Date:      dayPtr(2024, time.November, 1),
			LineItems: []domain.ExpenseLineItem{
				{Amount: dec(200), ContractID: "C1"}, // no line item reference
			},
		},
	}
	totals := allocation.AggregateSpend(expenses, contracts, today)

	proj := allocation.ProjectCommitments(contracts, totals, fullYearWindow(), today, "", nil)

	assert.InDelta(t, 200, proj.FutureBySupplier["SUP1"].InexactFloat64(), 0.01)
	assert.InDelta(t, 50, proj.FutureBySector["S1"].InexactFloat64(), 0.01)
	assert.InDelta(t, 150, proj.FutureBySector["S2"].InexactFloat64(), 0.01)
	assert.Empty(t, proj.OverdueBySupplier)
}

func TestProjectCommitments_SectorFilter(t *testing.T) {
	contracts := []domain.Contract{
		{
			ContractID: "C1",
			SupplierID: "SUP1",
			LineItems: []domain.ContractLineItem{
				{LineItemID: "LI1", ContractID: "C1", SectorID: "S1", Value: dec(100), StartDate: dayPtr(2025, time.January, 1), EndDate: dayPtr(2025, time.December, 31)},
				{LineItemID: "LI2", ContractID: "C1", SectorID: "S2", Value: dec(300), StartDate: dayPtr(2025, time.January, 1), EndDate: dayPtr(2025, time.December, 31)},
			},
		},
	}
	today := day(2024, time.December, 1)
	totals := allocation.AggregateSpend(nil, contracts, today)

	proj := allocation.ProjectCommitments(contracts, totals, fullYearWindow(), today, "S2", nil)

	assert.InDelta(t, 300, proj.FutureBySupplier["SUP1"].InexactFloat64(), 0.01)
	assert.True(t, proj.FutureBySector["S1"].IsZero())
	assert.InDelta(t, 300, proj.FutureBySector["S2"].InexactFloat64(), 0.01)
}
