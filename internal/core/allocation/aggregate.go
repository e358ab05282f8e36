package allocation

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/velstra/spendboard/internal/core/domain"
)

// FallbackSpend holds contract-level spend from expense line items that
// reference a contract but no specific contract line item. It is later
// prorated across the contract's line items by each item's share of the
// contract's total value.
type FallbackSpend struct {
	Total  decimal.Decimal
	ToDate decimal.Decimal
}

// SpendTotals are the lookup maps produced by AggregateSpend.
type SpendTotals struct {
	// ByContract is total spend per contract, across both line-item-level
	// and fallback attributions. Kept as a sanity aggregate.
	ByContract map[string]decimal.Decimal

	// ByLineItem is total spend per identifiable contract line item.
	ByLineItem map[string]decimal.Decimal

	// ByLineItemToDate is spend dated on or before today per identifiable
	// contract line item.
	ByLineItemToDate map[string]decimal.Decimal

	// ContractFallback is spend attributable to a contract but not to any
	// specific line item.
	ContractFallback map[string]FallbackSpend
}

// AggregateSpend replays the full expense history and attributes spent
// amounts to contracts and contract line items. Pure function: it never
// mutates its inputs and holds no state between calls.
//
// An expense without a date still counts toward totals but is excluded from
// the spend-to-date buckets.
func AggregateSpend(expenses []domain.Expense, contracts []domain.Contract, today time.Time) SpendTotals {
	totals := SpendTotals{
		ByContract:       make(map[string]decimal.Decimal),
		ByLineItem:       make(map[string]decimal.Decimal),
		ByLineItemToDate: make(map[string]decimal.Decimal),
		ContractFallback: make(map[string]FallbackSpend),
	}

	// Resolve a line item's owning contract when the expense line item names
	// only the contract line item.
	lineItemContract := make(map[string]string)
	for _, c := range contracts {
		for _, li := range c.LineItems {
			if li.LineItemID != "" {
				lineItemContract[li.LineItemID] = c.ContractID
			}
		}
	}

	todayDay := dayFloor(today)

	for _, exp := range expenses {
		onOrBeforeToday := false
		if exp.Date != nil {
			onOrBeforeToday = !dayFloor(*exp.Date).After(todayDay)
		}

		for _, eli := range exp.LineItems {
			contractID := eli.ContractID
			if contractID == "" && eli.ContractLineItemID != "" {
				contractID = lineItemContract[eli.ContractLineItemID]
			}
			if contractID == "" {
				// Not attributable to any contract; irrelevant to spend.
				continue
			}

			totals.ByContract[contractID] = totals.ByContract[contractID].Add(eli.Amount)

			if eli.ContractLineItemID != "" {
				id := eli.ContractLineItemID
				totals.ByLineItem[id] = totals.ByLineItem[id].Add(eli.Amount)
				if onOrBeforeToday {
					totals.ByLineItemToDate[id] = totals.ByLineItemToDate[id].Add(eli.Amount)
				}
				continue
			}

			fb := totals.ContractFallback[contractID]
			fb.Total = fb.Total.Add(eli.Amount)
			if onOrBeforeToday {
				fb.ToDate = fb.ToDate.Add(eli.Amount)
			}
			totals.ContractFallback[contractID] = fb
		}
	}

	return totals
}
