package mapping

import (
	"github.com/velstra/spendboard/internal/core/domain"
	"github.com/velstra/spendboard/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense.
// Line items are mapped separately via ToModelExpenseLineItems.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		Description:   d.Description,
		Date:          d.Date,
		SectorID:      d.SectorID,
		BranchID:      d.BranchID,
		Amount:        d.Amount,
		MultiBranch:   d.MultiBranch,
		Amortized:     d.Amortized,
		AmortizeStart: d.AmortizeStart,
		AmortizeEnd:   d.AmortizeEnd,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense plus its line item rows to a domain Expense
func ToDomainExpense(m models.Expense, items []models.ExpenseLineItem) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		Description:   m.Description,
		Date:          m.Date,
		SectorID:      m.SectorID,
		BranchID:      m.BranchID,
		Amount:        m.Amount,
		MultiBranch:   m.MultiBranch,
		Amortized:     m.Amortized,
		AmortizeStart: m.AmortizeStart,
		AmortizeEnd:   m.AmortizeEnd,
		LineItems:     ToDomainExpenseLineItems(items),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExpenseLineItems converts domain expense line items to model rows
func ToModelExpenseLineItems(expenseID string, ds []domain.ExpenseLineItem) []models.ExpenseLineItem {
	ms := make([]models.ExpenseLineItem, len(ds))
	for i, d := range ds {
		ms[i] = models.ExpenseLineItem{
			LineItemID:         d.LineItemID,
			ExpenseID:          expenseID,
			Description:        d.Description,
			Amount:             d.Amount,
			ContractID:         d.ContractID,
			ContractLineItemID: d.ContractLineItemID,
			SectorID:           d.SectorID,
			BranchIDs:          d.BranchIDs,
			Distribution:       d.Distribution,
			AssignedBranchID:   d.AssignedBranchID,
			BranchID:           d.BranchID,
		}
	}
	return ms
}

// ToDomainExpenseLineItems converts model expense line item rows to domain line items
func ToDomainExpenseLineItems(ms []models.ExpenseLineItem) []domain.ExpenseLineItem {
	ds := make([]domain.ExpenseLineItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.ExpenseLineItem{
			LineItemID:         m.LineItemID,
			Description:        m.Description,
			Amount:             m.Amount,
			ContractID:         m.ContractID,
			ContractLineItemID: m.ContractLineItemID,
			SectorID:           m.SectorID,
			BranchIDs:          m.BranchIDs,
			Distribution:       m.Distribution,
			AssignedBranchID:   m.AssignedBranchID,
			BranchID:           m.BranchID,
		}
	}
	return ds
}
