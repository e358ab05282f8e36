package mapping

import (
	"github.com/velstra/spendboard/internal/core/domain"
	"github.com/velstra/spendboard/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract.
// Line items are mapped separately via ToModelContractLineItems.
func ToModelContract(d domain.Contract) models.Contract {
	return models.Contract{
		ContractID:  d.ContractID,
		Number:      d.Number,
		SupplierID:  d.SupplierID,
		SignedAt:    d.SignedAt,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContract converts a model Contract plus its line item rows to a domain Contract
func ToDomainContract(m models.Contract, items []models.ContractLineItem) domain.Contract {
	return domain.Contract{
		ContractID:  m.ContractID,
		Number:      m.Number,
		SupplierID:  m.SupplierID,
		SignedAt:    m.SignedAt,
		Description: m.Description,
		LineItems:   ToDomainContractLineItems(items),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelContractLineItems converts domain contract line items to model rows
func ToModelContractLineItems(contractID string, ds []domain.ContractLineItem) []models.ContractLineItem {
	ms := make([]models.ContractLineItem, len(ds))
	for i, d := range ds {
		ms[i] = models.ContractLineItem{
			LineItemID:  d.LineItemID,
			ContractID:  contractID,
			SupplierID:  d.SupplierID,
			SectorID:    d.SectorID,
			BranchID:    d.BranchID,
			Description: d.Description,
			Value:       d.Value,
			StartDate:   d.StartDate,
			EndDate:     d.EndDate,
		}
	}
	return ms
}

// ToDomainContractLineItems converts model contract line item rows to domain line items
func ToDomainContractLineItems(ms []models.ContractLineItem) []domain.ContractLineItem {
	ds := make([]domain.ContractLineItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.ContractLineItem{
			LineItemID:  m.LineItemID,
			ContractID:  m.ContractID,
			SupplierID:  m.SupplierID,
			SectorID:    m.SectorID,
			BranchID:    m.BranchID,
			Description: m.Description,
			Value:       m.Value,
			StartDate:   m.StartDate,
			EndDate:     m.EndDate,
		}
	}
	return ds
}
