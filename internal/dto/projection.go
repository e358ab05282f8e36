package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/velstra/spendboard/internal/core/domain"
)

// ProjectionParams defines query parameters shared by the projection endpoints.
type ProjectionParams struct {
	FromDate time.Time `form:"fromDate" time_format:"2006-01-02" binding:"required"`
	ToDate   time.Time `form:"toDate" time_format:"2006-01-02" binding:"required"`
	SectorID string    `form:"sectorID"`
}

// SkippedRecordResponse describes a record the calculation omitted and why.
type SkippedRecordResponse struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BudgetProjectionResponse is the API representation of a budget projection.
type BudgetProjectionResponse struct {
	OverdueBySupplier map[string]decimal.Decimal `json:"overdueBySupplier"`
	FutureBySupplier  map[string]decimal.Decimal `json:"futureBySupplier"`
	FutureBySector    map[string]decimal.Decimal `json:"futureBySector"`
	Skipped           []SkippedRecordResponse    `json:"skipped,omitempty"`
}

// ToBudgetProjectionResponse converts a domain projection to its API representation.
func ToBudgetProjectionResponse(p *domain.BudgetProjection) BudgetProjectionResponse {
	return BudgetProjectionResponse{
		OverdueBySupplier: p.OverdueBySupplier,
		FutureBySupplier:  p.FutureBySupplier,
		FutureBySector:    p.FutureBySector,
		Skipped:           toSkippedResponses(p.Skipped),
	}
}

// BranchShareResponse is the API representation of a single expense's
// per-branch attribution.
type BranchShareResponse struct {
	ExpenseID        string                                `json:"expenseID"`
	ByBranch         map[string]decimal.Decimal            `json:"byBranch"`
	ByLineItem       map[string]decimal.Decimal            `json:"byLineItem"`
	ByLineItemBranch map[string]map[string]decimal.Decimal `json:"byLineItemBranch"`
	Skipped          []SkippedRecordResponse               `json:"skipped,omitempty"`
}

// ToBranchShareResponse converts a domain breakdown to its API representation.
func ToBranchShareResponse(expenseID string, b *domain.BranchShareBreakdown) BranchShareResponse {
	return BranchShareResponse{
		ExpenseID:        expenseID,
		ByBranch:         b.ByBranch,
		ByLineItem:       b.ByLineItem,
		ByLineItemBranch: b.ByLineItemBranch,
		Skipped:          toSkippedResponses(b.Skipped),
	}
}

func toSkippedResponses(skipped []domain.SkippedRecord) []SkippedRecordResponse {
	if len(skipped) == 0 {
		return nil
	}
	out := make([]SkippedRecordResponse, len(skipped))
	for i, s := range skipped {
		out[i] = SkippedRecordResponse(s)
	}
	return out
}
