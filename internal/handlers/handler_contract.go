package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velstra/spendboard/internal/apperrors"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/dto"
	"github.com/velstra/spendboard/internal/middleware"
)

// contractHandler handles HTTP requests related to contracts.
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
}

func newContractHandler(cs portssvc.ContractSvcFacade) *contractHandler {
	return &contractHandler{
		contractService: cs,
	}
}

// registerContractRoutes registers all contract-related routes.
func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.createContract) // Editor or admin
		contracts.GET("", h.listContracts)
		contracts.GET("/:id", h.getContract)
		contracts.PUT("/:id", h.updateContract)    // Editor or admin
		contracts.DELETE("/:id", h.deleteContract) // Editor or admin
	}
}

// createContract godoc
// @Summary Create a new contract
// @Description Creates a contract with its line items. Line items without a supplier inherit the contract's supplier.
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   contract body dto.CreateContractRequest true "Contract details"
// @Success 201 {object} dto.ContractResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to create contract"
// @Security BearerAuth
// @Router /contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create contract request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID), slog.String("contract_number", req.Number))
	logger.Info("Received request to create contract")

	contract, err := h.contractService.CreateContract(c.Request.Context(), req, creatorUserID)
	if err != nil {
		handleContractError(c, logger, err, "Failed to create contract")
		return
	}

	logger.Info("Contract created successfully", slog.String("contract_id", contract.ContractID))
	c.JSON(http.StatusCreated, dto.ToContractResponse(contract))
}

// getContract godoc
// @Summary Get a contract by ID
// @Description Retrieves a contract with its line items
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Contract not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve contract"
// @Security BearerAuth
// @Router /contracts/{id} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractID := c.Param("id")

	logger = logger.With(slog.String("contract_id", contractID))
	logger.Info("Received request to get contract")

	contract, err := h.contractService.GetContractByID(c.Request.Context(), contractID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Contract not found")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contract not found"})
			return
		}
		logger.Error("Failed to get contract from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve contract"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// listContracts godoc
// @Summary List contracts
// @Description Retrieves a paginated list of contracts with their line items
// @Tags contracts
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListContractsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list contracts"
// @Security BearerAuth
// @Router /contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListContractsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListContracts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	contracts, err := h.contractService.ListContracts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list contracts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list contracts"})
		return
	}

	logger.Info("Contracts listed successfully", slog.Int("count", len(contracts)))
	c.JSON(http.StatusOK, dto.ToListContractsResponse(contracts))
}

// updateContract godoc
// @Summary Update a contract
// @Description Updates contract fields; supplying lineItems replaces the full set
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   id path string true "Contract ID to update"
// @Param   contract body dto.UpdateContractRequest true "Contract details to update"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Contract not found"
// @Failure 500 {object} ErrorResponse "Failed to update contract"
// @Security BearerAuth
// @Router /contracts/{id} [put]
func (h *contractHandler) updateContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractID := c.Param("id")
	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateContract", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("contract_id", contractID), slog.String("updater_user_id", updaterUserID))
	logger.Info("Received request to update contract")

	contract, err := h.contractService.UpdateContract(c.Request.Context(), contractID, req, updaterUserID)
	if err != nil {
		handleContractError(c, logger, err, "Failed to update contract")
		return
	}

	logger.Info("Contract updated successfully")
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// deleteContract godoc
// @Summary Delete a contract
// @Description Marks a contract as deleted (soft delete)
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Contract not found"
// @Failure 500 {object} ErrorResponse "Failed to delete contract"
// @Security BearerAuth
// @Router /contracts/{id} [delete]
func (h *contractHandler) deleteContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("contract_id", contractID), slog.String("deleter_user_id", requestingUserID))
	logger.Info("Received request to delete contract")

	if err := h.contractService.DeleteContract(c.Request.Context(), contractID, requestingUserID); err != nil {
		handleContractError(c, logger, err, "Failed to delete contract")
		return
	}

	logger.Info("Contract deleted successfully")
	c.Status(http.StatusNoContent)
}

// handleContractError maps service errors for contract writes to HTTP responses.
func handleContractError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Contract not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contract not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User lacks the role for this contract operation")
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Contract validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			logger.Warn("Contract operation rejected", slog.String("error", appErr.Message))
			c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
			return
		}
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
