package allocation

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/velstra/spendboard/internal/core/domain"
)

// BranchShares computes the amount of one expense attributable to each
// branch, restricted to the reporting window. Amortized expenses are spread
// evenly per calendar day across their amortization range and only days
// inside the window count; everything else is recognized entirely on the
// expense date.
//
// branchSet is the set of known branch ids; unresolvable references are
// dropped. sectorBranches maps a sector to its branches for sector-wide
// distribution. sectorID restricts computation to line items of one sector
// (empty or domain.SectorAll means all).
func BranchShares(exp domain.Expense, branchSet map[string]struct{}, sectorBranches map[string][]string, window Window, sectorID string, diag *Diagnostics) domain.BranchShareBreakdown {
	out := domain.BranchShareBreakdown{
		ByBranch:         make(map[string]decimal.Decimal),
		ByLineItem:       make(map[string]decimal.Decimal),
		ByLineItemBranch: make(map[string]map[string]decimal.Decimal),
	}

	items := exp.LineItems
	if len(items) == 0 {
		// Legacy expenses carry their fields at the top level only.
		items = []domain.ExpenseLineItem{{
			Description: exp.Description,
			Amount:      exp.Amount,
			SectorID:    exp.SectorID,
			BranchID:    exp.BranchID,
		}}
	}

	if !exp.Amortized {
		if exp.Date == nil {
			diag.Skip("expense", exp.ExpenseID, "missing date")
			out.Skipped = diag.Records()
			return out
		}
		if !window.Contains(*exp.Date) {
			out.Skipped = diag.Records()
			return out
		}
	}

	filterSector := sectorID != "" && sectorID != domain.SectorAll

	for idx, li := range items {
		key := li.LineItemID
		if key == "" {
			key = strconv.Itoa(idx)
		}

		itemSector := li.EffectiveSectorID(exp)
		if filterSector && itemSector != sectorID {
			continue
		}

		branches := resolveBranches(exp, li, itemSector, branchSet, sectorBranches)
		if len(branches) == 0 {
			diag.Skip("expenseLineItem", key, "no resolvable branches")
			continue
		}

		var itemAmount decimal.Decimal
		if exp.Amortized {
			included, ok := amortizedPortion(exp, li.Amount, window)
			if !ok {
				diag.Skip("expenseLineItem", key, "amortized without valid date range")
				continue
			}
			itemAmount = included
		} else {
			itemAmount = li.Amount
		}

		if itemAmount.IsZero() {
			continue
		}

		perBranch := itemAmount.Div(decimal.NewFromInt(int64(len(branches))))
		shares := make(map[string]decimal.Decimal, len(branches))
		for _, b := range branches {
			shares[b] = perBranch
			out.ByBranch[b] = out.ByBranch[b].Add(perBranch)
		}
		out.ByLineItem[key] = out.ByLineItem[key].Add(itemAmount)
		out.ByLineItemBranch[key] = shares
	}

	out.Skipped = diag.Records()
	return out
}

// amortizedPortion returns the slice of amount whose amortization days fall
// inside the window. Reversed start/end are swapped; missing dates fail.
func amortizedPortion(exp domain.Expense, amount decimal.Decimal, window Window) (decimal.Decimal, bool) {
	if exp.AmortizeStart == nil || exp.AmortizeEnd == nil {
		return decimal.Zero, false
	}
	start := dayFloor(*exp.AmortizeStart)
	end := dayFloor(*exp.AmortizeEnd)
	if end.Before(start) {
		start, end = end, start
	}

	totalDays := daysBetween(start, end) + 1
	perDay := amount.Div(decimal.NewFromInt(int64(totalDays)))

	overlapStart := maxTime(start, window.Start)
	overlapEnd := minTime(end, window.End)
	if overlapEnd.Before(overlapStart) {
		return decimal.Zero, true
	}
	daysInside := daysBetween(overlapStart, overlapEnd) + 1
	return perDay.Mul(decimal.NewFromInt(int64(daysInside))), true
}

// resolveBranches determines the target branch ids for one expense line item,
// in priority order: explicit id list, parsed distribution value, single
// assigned id, the item's branch, the expense's branch, then every branch of
// the item's sector. Ids unknown to branchSet are dropped.
func resolveBranches(exp domain.Expense, li domain.ExpenseLineItem, itemSector string, branchSet map[string]struct{}, sectorBranches map[string][]string) []string {
	candidates := func(ids []string) []string {
		var known []string
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, ok := branchSet[id]; ok {
				known = append(known, id)
			}
		}
		return known
	}

	if len(li.BranchIDs) > 0 {
		if ids := candidates(li.BranchIDs); len(ids) > 0 {
			return ids
		}
	}
	if li.Distribution != "" && li.Distribution != domain.DistributionSectorWide {
		if ids := candidates(strings.Split(li.Distribution, ",")); len(ids) > 0 {
			return ids
		}
	}
	if li.Distribution != domain.DistributionSectorWide {
		if li.AssignedBranchID != "" {
			if ids := candidates([]string{li.AssignedBranchID}); len(ids) > 0 {
				return ids
			}
		}
		if li.BranchID != "" {
			if ids := candidates([]string{li.BranchID}); len(ids) > 0 {
				return ids
			}
		}
		if exp.BranchID != "" {
			if ids := candidates([]string{exp.BranchID}); len(ids) > 0 {
				return ids
			}
		}
	}
	return candidates(sectorBranches[itemSector])
}
