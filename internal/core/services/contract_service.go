package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/velstra/spendboard/internal/core/domain"
	portsrepo "github.com/velstra/spendboard/internal/core/ports/repositories"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/dto"
)

// contractService implements the ContractSvcFacade interface
type contractService struct {
	BaseService
	contractRepo portsrepo.ContractRepositoryFacade
}

// ContractServiceOption is a functional option for configuring the contract service
type ContractServiceOption func(*contractService)

// WithContractRoleAuthorizer adds the role authorizer dependency
func WithContractRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) ContractServiceOption {
	return func(s *contractService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewContractService creates a new contract service with the provided options
func NewContractService(repo portsrepo.ContractRepositoryFacade, options ...ContractServiceOption) portssvc.ContractSvcFacade {
	svc := &contractService{contractRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure contractService implements the ContractSvcFacade interface
var _ portssvc.ContractSvcFacade = (*contractService)(nil)

func (s *contractService) CreateContract(ctx context.Context, req dto.CreateContractRequest, creatorUserID string) (*domain.Contract, error) {
	if err := s.AuthorizeRole(ctx, creatorUserID, domain.RoleEditor); err != nil {
		s.LogError(ctx, err, "User not authorized to create contract",
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	now := time.Now()
	contractID := uuid.NewString()

	contract := domain.Contract{
		ContractID:  contractID,
		Number:      req.Number,
		SupplierID:  req.SupplierID,
		SignedAt:    req.SignedAt,
		Description: req.Description,
		LineItems:   buildContractLineItems(contractID, req.LineItems),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.contractRepo.SaveContract(ctx, contract); err != nil {
		s.LogError(ctx, err, "Failed to save contract", slog.String("contract_id", contractID))
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	s.LogInfo(ctx, "Contract created",
		slog.String("contract_id", contractID),
		slog.String("number", contract.Number),
		slog.Int("line_items", len(contract.LineItems)))
	return &contract, nil
}

func (s *contractService) UpdateContract(ctx context.Context, contractID string, req dto.UpdateContractRequest, updaterUserID string) (*domain.Contract, error) {
	if err := s.AuthorizeRole(ctx, updaterUserID, domain.RoleEditor); err != nil {
		return nil, err
	}

	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		contract.Number = *req.Number
	}
	if req.SupplierID != nil {
		contract.SupplierID = *req.SupplierID
	}
	if req.SignedAt != nil {
		contract.SignedAt = req.SignedAt
	}
	if req.Description != nil {
		contract.Description = *req.Description
	}
	if req.LineItems != nil {
		contract.LineItems = buildContractLineItems(contractID, *req.LineItems)
	}
	contract.LastUpdatedAt = time.Now()
	contract.LastUpdatedBy = updaterUserID

	if err := s.contractRepo.UpdateContract(ctx, *contract); err != nil {
		s.LogError(ctx, err, "Failed to update contract", slog.String("contract_id", contractID))
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}
	return contract, nil
}

func (s *contractService) GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *contractService) ListContracts(ctx context.Context, limit, offset int) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.FindContracts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return contracts, nil
}

func (s *contractService) DeleteContract(ctx context.Context, contractID string, requestingUserID string) error {
	if err := s.AuthorizeRole(ctx, requestingUserID, domain.RoleEditor); err != nil {
		return err
	}
	if err := s.contractRepo.MarkContractDeleted(ctx, contractID, time.Now(), requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete contract", slog.String("contract_id", contractID))
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	s.LogInfo(ctx, "Contract deleted", slog.String("contract_id", contractID))
	return nil
}

// buildContractLineItems converts request line items to domain line items,
// generating ids for items that carry none.
func buildContractLineItems(contractID string, items []dto.ContractLineItemRequest) []domain.ContractLineItem {
	out := make([]domain.ContractLineItem, len(items))
	for i, item := range items {
		lineItemID := item.LineItemID
		if lineItemID == "" {
			lineItemID = uuid.NewString()
		}
		out[i] = domain.ContractLineItem{
			LineItemID:  lineItemID,
			ContractID:  contractID,
			SupplierID:  item.SupplierID,
			SectorID:    item.SectorID,
			BranchID:    item.BranchID,
			Description: item.Description,
			Value:       item.Value,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
		}
	}
	return out
}
