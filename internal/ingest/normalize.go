// Package ingest normalizes raw legacy documents into canonical domain
// records. Historical data was entered through several generations of forms
// and carries inconsistently-cased field names, amounts as locale-formatted
// strings, and dates in assorted layouts. All of that variance is absorbed
// here so the allocation engine only ever sees one shape.
package ingest

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/velstra/spendboard/internal/core/domain"
)

// dateLayouts are tried in order when parsing date fields.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// ParseAmount coerces a raw amount value to a decimal. Numbers pass through;
// strings are parsed with tolerance for comma decimal separators and dot
// thousand separators ("1.234,56"). Anything unparseable becomes zero.
func ParseAmount(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case string:
		return parseAmountString(v)
	}
	if f, err := cast.ToFloat64E(raw); err == nil {
		return decimal.NewFromFloat(f)
	}
	return decimal.Zero
}

func parseAmountString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		// Comma decimal separator; dots are thousand separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDate tries the known layouts and returns nil when none match.
func parseDate(raw any) *time.Time {
	s := strings.TrimSpace(cast.ToString(raw))
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}

// field returns the first present key variant from the document.
func field(doc map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := doc[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(doc map[string]any, keys ...string) string {
	v, ok := field(doc, keys...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

func boolField(doc map[string]any, keys ...string) bool {
	v, ok := field(doc, keys...)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(v)
	return err == nil && b
}

// NormalizeExpense maps one raw expense document onto the canonical record.
func NormalizeExpense(doc map[string]any) domain.Expense {
	exp := domain.Expense{
		ExpenseID:   stringField(doc, "expenseID", "expenseId", "expense_id", "id"),
		Description: stringField(doc, "description", "desc", "title"),
		SectorID:    stringField(doc, "sectorID", "sectorId", "sector_id", "sector"),
		BranchID:    stringField(doc, "branchID", "branchId", "branch_id", "branch"),
		MultiBranch: boolField(doc, "multiBranch", "multi_branch", "isMultiBranch"),
		Amortized:   boolField(doc, "amortized", "isAmortized", "amortize"),
	}
	if v, ok := field(doc, "amount", "value", "total"); ok {
		exp.Amount = ParseAmount(v)
	}
	if v, ok := field(doc, "date", "expenseDate", "expense_date"); ok {
		exp.Date = parseDate(v)
	}
	if v, ok := field(doc, "amortizeStart", "amortize_start", "amortizationStart"); ok {
		exp.AmortizeStart = parseDate(v)
	}
	if v, ok := field(doc, "amortizeEnd", "amortize_end", "amortizationEnd"); ok {
		exp.AmortizeEnd = parseDate(v)
	}

	if rawItems, ok := field(doc, "lineItems", "line_items", "items"); ok {
		for _, rawItem := range cast.ToSlice(rawItems) {
			item, err := cast.ToStringMapE(rawItem)
			if err != nil {
				continue
			}
			exp.LineItems = append(exp.LineItems, normalizeExpenseLineItem(item))
		}
	}
	return exp
}

func normalizeExpenseLineItem(doc map[string]any) domain.ExpenseLineItem {
	li := domain.ExpenseLineItem{
		LineItemID:         stringField(doc, "lineItemID", "lineItemId", "line_item_id", "id"),
		Description:        stringField(doc, "description", "desc", "title"),
		ContractID:         stringField(doc, "contractID", "contractId", "contract_id", "contract"),
		ContractLineItemID: stringField(doc, "contractLineItemID", "contractLineItemId", "contract_line_item_id"),
		SectorID:           stringField(doc, "sectorID", "sectorId", "sector_id", "sector"),
		AssignedBranchID:   stringField(doc, "assignedBranchID", "assignedBranchId", "assigned_branch_id"),
		BranchID:           stringField(doc, "branchID", "branchId", "branch_id", "branch"),
	}
	if v, ok := field(doc, "amount", "value"); ok {
		li.Amount = ParseAmount(v)
	}

	// The distributed value is either an array of ids, a comma-separated
	// string, or the sector-wide marker.
	if v, ok := field(doc, "branchIDs", "branchIds", "branch_ids"); ok {
		li.BranchIDs = toStringList(v)
	}
	if v, ok := field(doc, "distribution", "distributed", "distributeTo"); ok {
		switch ids := toStringList(v); {
		case len(ids) == 1 && strings.EqualFold(ids[0], domain.DistributionSectorWide):
			li.Distribution = domain.DistributionSectorWide
		case len(ids) > 0:
			li.Distribution = strings.Join(ids, ",")
		}
	}
	return li
}

// NormalizeContract maps one raw contract document onto the canonical record.
func NormalizeContract(doc map[string]any) domain.Contract {
	c := domain.Contract{
		ContractID:  stringField(doc, "contractID", "contractId", "contract_id", "id"),
		Number:      stringField(doc, "number", "contractNumber", "contract_number"),
		SupplierID:  stringField(doc, "supplierID", "supplierId", "supplier_id", "supplier"),
		Description: stringField(doc, "description", "desc"),
	}
	if v, ok := field(doc, "signedAt", "signed_at", "signingDate", "signing_date"); ok {
		c.SignedAt = parseDate(v)
	}

	if rawItems, ok := field(doc, "lineItems", "line_items", "items"); ok {
		for _, rawItem := range cast.ToSlice(rawItems) {
			item, err := cast.ToStringMapE(rawItem)
			if err != nil {
				continue
			}
			li := domain.ContractLineItem{
				LineItemID:  stringField(item, "lineItemID", "lineItemId", "line_item_id", "id"),
				ContractID:  c.ContractID,
				SupplierID:  stringField(item, "supplierID", "supplierId", "supplier_id"),
				SectorID:    stringField(item, "sectorID", "sectorId", "sector_id", "sector"),
				BranchID:    stringField(item, "branchID", "branchId", "branch_id", "branch"),
				Description: stringField(item, "description", "desc"),
			}
			if v, ok := field(item, "value", "amount", "total"); ok {
				li.Value = ParseAmount(v)
			}
			if v, ok := field(item, "startDate", "start_date", "start"); ok {
				li.StartDate = parseDate(v)
			}
			if v, ok := field(item, "endDate", "end_date", "end"); ok {
				li.EndDate = parseDate(v)
			}
			c.LineItems = append(c.LineItems, li)
		}
	}
	return c
}

func toStringList(raw any) []string {
	var out []string
	switch v := raw.(type) {
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	default:
		for _, item := range cast.ToSlice(raw) {
			if s := strings.TrimSpace(cast.ToString(item)); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
