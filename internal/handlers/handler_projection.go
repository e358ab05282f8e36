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

// projectionHandler handles HTTP requests for allocation reports.
type projectionHandler struct {
	projectionService portssvc.ProjectionService
}

func newProjectionHandler(ps portssvc.ProjectionService) *projectionHandler {
	return &projectionHandler{
		projectionService: ps,
	}
}

// registerProjectionRoutes registers the projection report routes.
func registerProjectionRoutes(rg *gin.RouterGroup, projectionService portssvc.ProjectionService) {
	h := newProjectionHandler(projectionService)

	projections := rg.Group("/projections")
	{
		projections.GET("/budget", h.budgetProjection)
		projections.GET("/expenses/:id/branch-shares", h.expenseBranchShares)
	}
}

// budgetProjection godoc
// @Summary Budget projection report
// @Description Prorates every contract's unspent remainder across the reporting window, split into overdue and future amounts per supplier and per sector. Recomputed from the full history on every call.
// @Tags projections
// @Produce  json
// @Param   fromDate query string true "Window start (YYYY-MM-DD)"
// @Param   toDate query string true "Window end (YYYY-MM-DD)"
// @Param   sectorID query string false "Restrict to one sector; omit or 'ALL' for every sector"
// @Success 200 {object} dto.BudgetProjectionResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to compute projection"
// @Security BearerAuth
// @Router /projections/budget [get]
func (h *projectionHandler) budgetProjection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ProjectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for budget projection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.Time("from_date", params.FromDate),
		slog.Time("to_date", params.ToDate),
		slog.String("sector_id", params.SectorID),
	)
	logger.Info("Received request for budget projection")

	projection, err := h.projectionService.BudgetProjection(c.Request.Context(), params.FromDate, params.ToDate, params.SectorID, userID)
	if err != nil {
		handleProjectionError(c, logger, err, "Failed to compute projection")
		return
	}

	logger.Info("Budget projection computed", slog.Int("skipped", len(projection.Skipped)))
	c.JSON(http.StatusOK, dto.ToBudgetProjectionResponse(projection))
}

// expenseBranchShares godoc
// @Summary Per-branch shares of one expense
// @Description Attributes one expense's amount to branches within the reporting window, broken down per line item.
// @Tags projections
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   fromDate query string true "Window start (YYYY-MM-DD)"
// @Param   toDate query string true "Window end (YYYY-MM-DD)"
// @Param   sectorID query string false "Restrict to one sector; omit or 'ALL' for every sector"
// @Success 200 {object} dto.BranchShareResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Failed to compute branch shares"
// @Security BearerAuth
// @Router /projections/expenses/{id}/branch-shares [get]
func (h *projectionHandler) expenseBranchShares(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	var params dto.ProjectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for branch shares", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("expense_id", expenseID))
	logger.Info("Received request for expense branch shares")

	breakdown, err := h.projectionService.ExpenseBranchShares(c.Request.Context(), expenseID, params.FromDate, params.ToDate, params.SectorID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Expense not found for branch shares")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expense not found"})
			return
		}
		handleProjectionError(c, logger, err, "Failed to compute branch shares")
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchShareResponse(expenseID, breakdown))
}

// handleProjectionError maps projection service errors to HTTP responses.
func handleProjectionError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User lacks the role for projection reports")
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Projection input rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			logger.Warn("Projection request rejected", slog.String("error", appErr.Message))
			c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
			return
		}
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
