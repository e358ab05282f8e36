package allocation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/velstra/spendboard/internal/core/domain"
)

// ProjectCommitments computes, for every contract line item with a positive
// unspent remainder, how much of that remainder is overdue (should have been
// spent by today under straight-line daily pacing, but was not) and how much
// is legitimately future, both clipped to the reporting window.
//
// Line items with missing dates, non-positive values, or fully consumed
// remainders are skipped and reported on diag. sectorID restricts the
// projection to line items of one sector; empty or domain.SectorAll means no
// restriction.
func ProjectCommitments(contracts []domain.Contract, spend SpendTotals, window Window, today time.Time, sectorID string, diag *Diagnostics) domain.BudgetProjection {
	proj := domain.BudgetProjection{
		OverdueBySupplier: make(map[string]decimal.Decimal),
		FutureBySupplier:  make(map[string]decimal.Decimal),
		FutureBySector:    make(map[string]decimal.Decimal),
	}

	filterSector := sectorID != "" && sectorID != domain.SectorAll
	todayDay := dayFloor(today)

	for _, c := range contracts {
		// Fallback spend is prorated by each line item's share of the whole
		// contract's value, so the denominator stays the full contract total
		// even when a sector filter hides some items.
		contractTotal := c.TotalValue()
		fallback := spend.ContractFallback[c.ContractID]

		for idx, li := range c.LineItems {
			if filterSector && li.SectorID != sectorID {
				continue
			}

			key := li.LineItemID
			if key == "" {
				key = fmt.Sprintf("%s#%d", c.ContractID, idx)
			}

			spentTotal := decimal.Zero
			spentToDate := decimal.Zero
			if li.LineItemID != "" {
				spentTotal = spend.ByLineItem[li.LineItemID]
				spentToDate = spend.ByLineItemToDate[li.LineItemID]
			}
			if contractTotal.IsPositive() {
				share := li.Value.Div(contractTotal)
				spentTotal = spentTotal.Add(fallback.Total.Mul(share))
				spentToDate = spentToDate.Add(fallback.ToDate.Mul(share))
			}

			remaining := li.Value.Sub(spentTotal)
			if !remaining.IsPositive() {
				diag.Skip("contractLineItem", key, "no remaining value")
				continue
			}
			if li.StartDate == nil || li.EndDate == nil {
				diag.Skip("contractLineItem", key, "missing start or end date")
				continue
			}

			start := dayFloor(*li.StartDate)
			end := dayFloor(*li.EndDate)

			overlapStart := maxTime(start, window.Start)
			overlapEnd := minTime(end, window.End)
			if overlapEnd.Before(overlapStart) {
				diag.Skip("contractLineItem", key, "outside reporting window")
				continue
			}

			totalDays := daysBetween(start, end) + 1
			if totalDays < 1 {
				totalDays = 1
			}
			dailyAmount := li.Value.Div(decimal.NewFromInt(int64(totalDays)))

			overlapTotalDays := daysBetween(overlapStart, overlapEnd) + 1

			// Isolate spend belonging to the reporting window: remove the
			// portion expected before the overlap, then cap at the window's
			// theoretical maximum.
			adjustedSpent := spentToDate
			if start.Before(overlapStart) {
				daysBeforeOverlap := daysBetween(start, overlapStart)
				adjustedSpent = adjustedSpent.Sub(dailyAmount.Mul(decimal.NewFromInt(int64(daysBeforeOverlap))))
				if adjustedSpent.IsNegative() {
					adjustedSpent = decimal.Zero
				}
			}
			windowMax := dailyAmount.Mul(decimal.NewFromInt(int64(overlapTotalDays)))
			if adjustedSpent.GreaterThan(windowMax) {
				adjustedSpent = windowMax
			}

			overdueDays := 0
			if !todayDay.Before(overlapStart) {
				overdueDays = daysBetween(overlapStart, minTime(todayDay, overlapEnd)) + 1
				if overdueDays > overlapTotalDays {
					overdueDays = overlapTotalDays
				}
			}
			futureDays := overlapTotalDays - overdueDays

			expectedByNow := dailyAmount.Mul(decimal.NewFromInt(int64(overdueDays)))
			counted := decimal.Min(adjustedSpent, expectedByNow)
			shortfall := expectedByNow.Sub(counted)
			if shortfall.IsNegative() {
				shortfall = decimal.Zero
			}
			overdueAmount := decimal.Min(remaining, shortfall)

			remaining = remaining.Sub(overdueAmount)
			futurePotential := dailyAmount.Mul(decimal.NewFromInt(int64(futureDays)))
			futureAmount := decimal.Min(remaining, futurePotential)
			if futureAmount.IsNegative() {
				futureAmount = decimal.Zero
			}

			supplierID := li.EffectiveSupplierID(c)
			if overdueAmount.IsPositive() {
				proj.OverdueBySupplier[supplierID] = proj.OverdueBySupplier[supplierID].Add(overdueAmount)
			}
			if futureAmount.IsPositive() {
				proj.FutureBySupplier[supplierID] = proj.FutureBySupplier[supplierID].Add(futureAmount)
				if li.SectorID != "" {
					proj.FutureBySector[li.SectorID] = proj.FutureBySector[li.SectorID].Add(futureAmount)
				}
			}
		}
	}

	proj.Skipped = diag.Records()
	return proj
}
