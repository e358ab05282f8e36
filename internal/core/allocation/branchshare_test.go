package allocation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velstra/spendboard/internal/core/allocation"
	"github.com/velstra/spendboard/internal/core/domain"
)

func branchSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestBranchShares_TopLevelFieldsOnly(t *testing.T) {
	// Legacy shape: no line items, amount and branch at the top level.
	exp := domain.Expense{
		ExpenseID: "E1",
		Amount:    dec(150),
		BranchID:  "B1",
		Date:      dayPtr(2025, time.February, 10),
	}
	window := allocation.NewWindow(day(2025, time.February, 1), day(2025, time.February, 28))

	out := allocation.BranchShares(exp, branchSet("B1"), nil, window, "", nil)

	require.Len(t, out.ByBranch, 1)
	assert.True(t, out.ByBranch["B1"].Equal(dec(150)))
	assert.True(t, out.ByLineItem["0"].Equal(dec(150)))
	assert.True(t, out.ByLineItemBranch["0"]["B1"].Equal(dec(150)))
}

func TestBranchShares_DateOutsideWindow(t *testing.T) {
	exp := domain.Expense{
		ExpenseID: "E1",
		Amount:    dec(150),
		BranchID:  "B1",
		Date:      dayPtr(2025, time.March, 1),
	}
	window := allocation.NewWindow(day(2025, time.February, 1), day(2025, time.February, 28))

	out := allocation.BranchShares(exp, branchSet("B1"), nil, window, "", nil)

	assert.Empty(t, out.ByBranch)
}

func TestBranchShares_AmortizedClippedToWindow(t *testing.T) {
	// 300 spread over 90 days (Jan 1 - Mar 31), filtered to February's 28
	// days: 300/90*28 ~= 93.33.
	exp := domain.Expense{
		ExpenseID:     "E1",
		Amortized:     true,
		AmortizeStart: dayPtr(2025, time.January, 1),
		AmortizeEnd:   dayPtr(2025, time.March, 31),
		LineItems: []domain.ExpenseLineItem{
			{Amount: dec(300), BranchID: "B1"},
		},
	}
	window := allocation.NewWindow(day(2025, time.February, 1), day(2025, time.February, 28))

	out := allocation.BranchShares(exp, branchSet("B1"), nil, window, "", nil)

	assert.InDelta(t, 93.33, out.ByBranch["B1"].InexactFloat64(), 0.01)
}

func TestBranchShares_AmortizedConservation(t *testing.T) {
	// Whole amortization range inside the window, split across two
	// branches: shares must sum back to the original amount.
	exp := domain.Expense{
		ExpenseID:     "E1",
		Amortized:     true,
		AmortizeStart: dayPtr(2025, time.March, 31),
		AmortizeEnd:   dayPtr(2025, time.January, 1), // reversed on purpose
		LineItems: []domain.ExpenseLineItem{
			{Amount: dec(300), BranchIDs: []string{"B1", "B2"}},
		},
	}
	window := allocation.NewWindow(day(2025, time.January, 1), day(2025, time.December, 31))

	out := allocation.BranchShares(exp, branchSet("B1", "B2"), nil, window, "", nil)

	total := out.ByBranch["B1"].Add(out.ByBranch["B2"])
	assert.InDelta(t, 300, total.InexactFloat64(), 0.0001)
}

func TestBranchShares_ResolutionPriority(t *testing.T) {
	window := allocation.NewWindow(day(2025, time.January, 1), day(2025, time.December, 31))
	date := dayPtr(2025, time.June, 1)
	set := branchSet("B1", "B2", "B3")
	sectorBranches := map[string][]string{"S1": {"B1", "B2", "B3"}}

	tests := []struct {
		name string
		item domain.ExpenseLineItem
		want []string
	}{
		{
			name: "explicit list wins over everything",
			item: domain.ExpenseLineItem{Amount: dec(90), BranchIDs: []string{"B1", "B2"}, BranchID: "B3"},
			want: []string{"B1", "B2"},
		},
		{
			name: "distribution value parsed from comma list",
			item: domain.ExpenseLineItem{Amount: dec(90), Distribution: "B2, B3", BranchID: "B1"},
			want: []string{"B2", "B3"},
		},
		{
			name: "single assigned branch",
			item: domain.ExpenseLineItem{Amount: dec(90), AssignedBranchID: "B2", BranchID: "B1"},
			want: []string{"B2"},
		},
		{
			name: "item branch before expense branch",
			item: domain.ExpenseLineItem{Amount: dec(90), BranchID: "B3"},
			want: []string{"B3"},
		},
		{
			name: "sector wide marker distributes across the sector",
			item: domain.ExpenseLineItem{Amount: dec(90), Distribution: domain.DistributionSectorWide, BranchID: "B1", SectorID: "S1"},
			want: []string{"B1", "B2", "B3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := domain.Expense{
				ExpenseID: "E1",
				Date:      date,
				BranchID:  "B1",
				LineItems: []domain.ExpenseLineItem{tt.item},
			}

			out := allocation.BranchShares(exp, set, sectorBranches, window, "", nil)

			require.Len(t, out.ByBranch, len(tt.want))
			perBranch := dec(90).Div(dec(float64(len(tt.want))))
			for _, b := range tt.want {
				assert.True(t, out.ByBranch[b].Equal(perBranch), "branch %s got %s", b, out.ByBranch[b])
			}
		})
	}
}

func TestBranchShares_ExpenseBranchFallback(t *testing.T) {
	exp := domain.Expense{
		ExpenseID: "E1",
		Date:      dayPtr(2025, time.June, 1),
		BranchID:  "B1",
		LineItems: []domain.ExpenseLineItem{{Amount: dec(50)}},
	}
	window := allocation.NewWindow(day(2025, time.January, 1), day(2025, time.December, 31))

	out := allocation.BranchShares(exp, branchSet("B1"), nil, window, "", nil)

	assert.True(t, out.ByBranch["B1"].Equal(dec(50)))
}

func TestBranchShares_UnresolvableBranchesSkipped(t *testing.T) {
	exp := domain.Expense{
		ExpenseID: "E1",
		Date:      dayPtr(2025, time.June, 1),
		LineItems: []domain.ExpenseLineItem{
			{LineItemID: "X", Amount: dec(50), BranchID: "UNKNOWN"},
		},
	}
	window := allocation.NewWindow(day(2025, time.January, 1), day(2025, time.December, 31))

	diag := &allocation.Diagnostics{}
	out := allocation.BranchShares(exp, branchSet("B1"), nil, window, "", diag)

	assert.Empty(t, out.ByBranch)
	require.Len(t, out.Skipped, 1)
	assert.Equal(t, "no resolvable branches", out.Skipped[0].Reason)
	assert.Equal(t, "X", out.Skipped[0].ID)
}

func TestBranchShares_SectorFilter(t *testing.T) {
	exp := domain.Expense{
		ExpenseID: "E1",
		Date:      dayPtr(2025, time.June, 1),
		LineItems: []domain.ExpenseLineItem{
			{Amount: dec(50), SectorID: "S1", BranchID: "B1"},
			{Amount: dec(70), SectorID: "S2", BranchID: "B2"},
		},
	}
	window := allocation.NewWindow(day(2025, time.January, 1), day(2025, time.December, 31))

	out := allocation.BranchShares(exp, branchSet("B1", "B2"), nil, window, "S2", nil)

	assert.True(t, out.ByBranch["B1"].IsZero())
	assert.True(t, out.ByBranch["B2"].Equal(dec(70)))
}
