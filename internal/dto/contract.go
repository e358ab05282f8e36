package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/velstra/spendboard/internal/core/domain"
)

// ContractLineItemRequest defines one line item on a create/update contract request.
type ContractLineItemRequest struct {
	LineItemID  string          `json:"lineItemID"`
	SupplierID  string          `json:"supplierID"` // Empty inherits the contract's supplier
	SectorID    string          `json:"sectorID" binding:"required"`
	BranchID    string          `json:"branchID"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value" binding:"required"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
}

// CreateContractRequest defines the data needed to create a contract.
type CreateContractRequest struct {
	Number      string                    `json:"number" binding:"required"`
	SupplierID  string                    `json:"supplierID" binding:"required"`
	SignedAt    *time.Time                `json:"signedAt"`
	Description string                    `json:"description"`
	LineItems   []ContractLineItemRequest `json:"lineItems" binding:"dive"`
}

// UpdateContractRequest defines the data allowed for updating a contract.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateContractRequest struct {
	Number      *string                    `json:"number"`
	SupplierID  *string                    `json:"supplierID"`
	SignedAt    *time.Time                 `json:"signedAt"`
	Description *string                    `json:"description"`
	LineItems   *[]ContractLineItemRequest `json:"lineItems" binding:"omitempty,dive"`
}

// ListContractsParams defines query parameters for listing contracts.
type ListContractsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ContractResponse is the API representation of a contract.
type ContractResponse struct {
	ContractID  string                      `json:"contractID"`
	Number      string                      `json:"number"`
	SupplierID  string                      `json:"supplierID"`
	SignedAt    *time.Time                  `json:"signedAt,omitempty"`
	Description string                      `json:"description"`
	TotalValue  decimal.Decimal            `json:"totalValue"`
	LineItems   []ContractLineItemResponse `json:"lineItems"`
}

// ContractLineItemResponse is the API representation of a contract line item.
type ContractLineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	SupplierID  string          `json:"supplierID"`
	SectorID    string          `json:"sectorID"`
	BranchID    string          `json:"branchID,omitempty"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
}

// ToContractResponse converts a domain contract to its API representation.
func ToContractResponse(c *domain.Contract) ContractResponse {
	resp := ContractResponse{
		ContractID:  c.ContractID,
		Number:      c.Number,
		SupplierID:  c.SupplierID,
		SignedAt:    c.SignedAt,
		Description: c.Description,
		TotalValue:  c.TotalValue(),
		LineItems:   make([]ContractLineItemResponse, len(c.LineItems)),
	}
	for i, li := range c.LineItems {
		resp.LineItems[i] = ContractLineItemResponse{
			LineItemID:  li.LineItemID,
			SupplierID:  li.EffectiveSupplierID(*c),
			SectorID:    li.SectorID,
			BranchID:    li.BranchID,
			Description: li.Description,
			Value:       li.Value,
			StartDate:   li.StartDate,
			EndDate:     li.EndDate,
		}
	}
	return resp
}

// ListContractsResponse wraps the list of contracts.
type ListContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}

// ToListContractsResponse converts domain contracts to the list DTO.
func ToListContractsResponse(contracts []domain.Contract) ListContractsResponse {
	out := ListContractsResponse{Contracts: make([]ContractResponse, len(contracts))}
	for i := range contracts {
		out.Contracts[i] = ToContractResponse(&contracts[i])
	}
	return out
}
