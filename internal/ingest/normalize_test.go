package ingest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velstra/spendboard/internal/core/domain"
	"github.com/velstra/spendboard/internal/ingest"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{"plain float", 123.45, 123.45},
		{"integer", 80, 80},
		{"dot decimal string", "123.45", 123.45},
		{"comma decimal string", "123,45", 123.45},
		{"thousands with comma decimal", "1.234,56", 1234.56},
		{"spaces around", " 99,90 ", 99.90},
		{"garbage coerces to zero", "n/a", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ingest.ParseAmount(tt.raw)
			assert.InDelta(t, tt.want, got.InexactFloat64(), 0.0001)
		})
	}
}

func TestNormalizeExpense_KeyVariants(t *testing.T) {
	doc := map[string]any{
		"expense_id":   "E1",
		"desc":         "radio campaign",
		"sectorId":     "S1",
		"branch_id":    "B1",
		"amount":       "1.500,00",
		"expense_date": "2025-02-10",
		"isAmortized":  "true",
		"amortize_start": "2025-01-01",
		"amortizationEnd": "2025-03-31",
		"line_items": []any{
			map[string]any{
				"description":           "airtime",
				"amount":                750.0,
				"contract_id":           "C1",
				"contractLineItemId":    "LI1",
				"distributed":           "B1, B2",
			},
			map[string]any{
				"description": "production",
				"amount":      "750,00",
				"branchIds":   []any{"B3"},
			},
		},
	}

	exp := ingest.NormalizeExpense(doc)

	assert.Equal(t, "E1", exp.ExpenseID)
	assert.Equal(t, "radio campaign", exp.Description)
	assert.Equal(t, "S1", exp.SectorID)
	assert.Equal(t, "B1", exp.BranchID)
	assert.InDelta(t, 1500, exp.Amount.InexactFloat64(), 0.001)
	require.NotNil(t, exp.Date)
	assert.Equal(t, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), *exp.Date)
	assert.True(t, exp.Amortized)
	require.NotNil(t, exp.AmortizeStart)
	require.NotNil(t, exp.AmortizeEnd)

	require.Len(t, exp.LineItems, 2)
	assert.Equal(t, "C1", exp.LineItems[0].ContractID)
	assert.Equal(t, "LI1", exp.LineItems[0].ContractLineItemID)
	assert.Equal(t, "B1,B2", exp.LineItems[0].Distribution)
	assert.Equal(t, []string{"B3"}, exp.LineItems[1].BranchIDs)
	assert.InDelta(t, 750, exp.LineItems[1].Amount.InexactFloat64(), 0.001)
}

func TestNormalizeExpense_SectorWideMarker(t *testing.T) {
	doc := map[string]any{
		"id":     "E2",
		"amount": 90,
		"items": []any{
			map[string]any{"amount": 90, "distribution": "sector_wide"},
		},
	}

	exp := ingest.NormalizeExpense(doc)

	require.Len(t, exp.LineItems, 1)
	assert.Equal(t, domain.DistributionSectorWide, exp.LineItems[0].Distribution)
}

func TestNormalizeContract(t *testing.T) {
	doc := map[string]any{
		"contract_number": "CT-2025-007",
		"id":              "C1",
		"supplier":        "SUP1",
		"signing_date":    "2025-01-15",
		"items": []any{
			map[string]any{
				"id":         "LI1",
				"value":      "12.000,00",
				"sector":     "S1",
				"start_date": "2025-01-01",
				"end":        "2025-12-31",
			},
		},
	}

	c := ingest.NormalizeContract(doc)

	assert.Equal(t, "C1", c.ContractID)
	assert.Equal(t, "CT-2025-007", c.Number)
	assert.Equal(t, "SUP1", c.SupplierID)
	require.NotNil(t, c.SignedAt)

	require.Len(t, c.LineItems, 1)
	li := c.LineItems[0]
	assert.Equal(t, "C1", li.ContractID)
	assert.Equal(t, "S1", li.SectorID)
	assert.InDelta(t, 12000, li.Value.InexactFloat64(), 0.001)
	require.NotNil(t, li.StartDate)
	require.NotNil(t, li.EndDate)
}
