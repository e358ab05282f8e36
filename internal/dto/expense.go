package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/velstra/spendboard/internal/core/domain"
)

// ExpenseLineItemRequest defines one line item on a create/update expense request.
type ExpenseLineItemRequest struct {
	LineItemID         string          `json:"lineItemID"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	ContractID         string          `json:"contractID"`
	ContractLineItemID string          `json:"contractLineItemID"`
	SectorID           string          `json:"sectorID"`
	BranchIDs          []string        `json:"branchIDs"`
	Distribution       string          `json:"distribution"`
	AssignedBranchID   string          `json:"assignedBranchID"`
	BranchID           string          `json:"branchID"`
}

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Description   string                   `json:"description"`
	Date          *time.Time               `json:"date"`
	SectorID      string                   `json:"sectorID"`
	BranchID      string                   `json:"branchID"`
	Amount        decimal.Decimal          `json:"amount" binding:"required"`
	MultiBranch   bool                     `json:"multiBranch"`
	Amortized     bool                     `json:"amortized"`
	AmortizeStart *time.Time               `json:"amortizeStart"`
	AmortizeEnd   *time.Time               `json:"amortizeEnd"`
	LineItems     []ExpenseLineItemRequest `json:"lineItems" binding:"dive"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateExpenseRequest struct {
	Description   *string                   `json:"description"`
	Date          *time.Time                `json:"date"`
	SectorID      *string                   `json:"sectorID"`
	BranchID      *string                   `json:"branchID"`
	Amount        *decimal.Decimal          `json:"amount"`
	MultiBranch   *bool                     `json:"multiBranch"`
	Amortized     *bool                     `json:"amortized"`
	AmortizeStart *time.Time                `json:"amortizeStart"`
	AmortizeEnd   *time.Time                `json:"amortizeEnd"`
	LineItems     *[]ExpenseLineItemRequest `json:"lineItems" binding:"omitempty,dive"`
}

// ListExpensesParams defines query parameters for listing expenses.
// NextToken is an opaque cursor returned by the previous page.
type ListExpensesParams struct {
	Limit     int     `form:"limit,default=50"`
	NextToken *string `form:"nextToken"`
}

// ImportExpensesRequest carries raw expense documents for bulk import.
// Documents are loosely-typed maps so legacy exports with variant key casing
// and locale-formatted amounts can be normalized server-side.
type ImportExpensesRequest struct {
	Documents []map[string]any `json:"documents" binding:"required,min=1"`
}

// ImportExpensesResponse reports the outcome of a bulk import.
type ImportExpensesResponse struct {
	Imported int `json:"imported"`
}

// ExpenseResponse is the API representation of an expense.
type ExpenseResponse struct {
	ExpenseID     string                    `json:"expenseID"`
	Description   string                    `json:"description"`
	Date          *time.Time                `json:"date,omitempty"`
	SectorID      string                    `json:"sectorID,omitempty"`
	BranchID      string                    `json:"branchID,omitempty"`
	Amount        decimal.Decimal           `json:"amount"`
	MultiBranch   bool                      `json:"multiBranch"`
	Amortized     bool                      `json:"amortized"`
	AmortizeStart *time.Time                `json:"amortizeStart,omitempty"`
	AmortizeEnd   *time.Time                `json:"amortizeEnd,omitempty"`
	LineItems     []ExpenseLineItemResponse `json:"lineItems"`
}

// ExpenseLineItemResponse is the API representation of an expense line item.
type ExpenseLineItemResponse struct {
	LineItemID         string          `json:"lineItemID"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	ContractID         string          `json:"contractID,omitempty"`
	ContractLineItemID string          `json:"contractLineItemID,omitempty"`
	SectorID           string          `json:"sectorID,omitempty"`
	BranchIDs          []string        `json:"branchIDs,omitempty"`
	Distribution       string          `json:"distribution,omitempty"`
	AssignedBranchID   string          `json:"assignedBranchID,omitempty"`
	BranchID           string          `json:"branchID,omitempty"`
}

// ToExpenseResponse converts a domain expense to its API representation.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Description:   e.Description,
		Date:          e.Date,
		SectorID:      e.SectorID,
		BranchID:      e.BranchID,
		Amount:        e.Amount,
		MultiBranch:   e.MultiBranch,
		Amortized:     e.Amortized,
		AmortizeStart: e.AmortizeStart,
		AmortizeEnd:   e.AmortizeEnd,
		LineItems:     make([]ExpenseLineItemResponse, len(e.LineItems)),
	}
	for i, li := range e.LineItems {
		resp.LineItems[i] = ExpenseLineItemResponse{
			LineItemID:         li.LineItemID,
			Description:        li.Description,
			Amount:             li.Amount,
			ContractID:         li.ContractID,
			ContractLineItemID: li.ContractLineItemID,
			SectorID:           li.SectorID,
			BranchIDs:          li.BranchIDs,
			Distribution:       li.Distribution,
			AssignedBranchID:   li.AssignedBranchID,
			BranchID:           li.BranchID,
		}
	}
	return resp
}

// ListExpensesResponse wraps the list of expenses with the pagination cursor.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListExpensesResponse converts domain expenses to the list DTO.
func ToListExpensesResponse(expenses []domain.Expense, nextToken *string) ListExpensesResponse {
	out := ListExpensesResponse{
		Expenses:  make([]ExpenseResponse, len(expenses)),
		NextToken: nextToken,
	}
	for i := range expenses {
		out.Expenses[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}
