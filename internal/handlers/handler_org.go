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

// orgHandler handles HTTP requests for the organisational reference data:
// sectors, branches and suppliers.
type orgHandler struct {
	sectorService   portssvc.SectorSvcFacade
	branchService   portssvc.BranchSvcFacade
	supplierService portssvc.SupplierSvcFacade
}

func newOrgHandler(ss portssvc.SectorSvcFacade, bs portssvc.BranchSvcFacade, sup portssvc.SupplierSvcFacade) *orgHandler {
	return &orgHandler{
		sectorService:   ss,
		branchService:   bs,
		supplierService: sup,
	}
}

// registerOrgRoutes registers sector, branch and supplier routes.
func registerOrgRoutes(rg *gin.RouterGroup, ss portssvc.SectorSvcFacade, bs portssvc.BranchSvcFacade, sup portssvc.SupplierSvcFacade) {
	h := newOrgHandler(ss, bs, sup)

	sectors := rg.Group("/sectors")
	{
		sectors.POST("", h.createSector) // Editor or admin
		sectors.GET("", h.listSectors)
		sectors.GET("/:id", h.getSector)
		sectors.PUT("/:id", h.updateSector) // Editor or admin
	}

	branches := rg.Group("/branches")
	{
		branches.POST("", h.createBranch) // Editor or admin
		branches.GET("", h.listBranches)
		branches.GET("/:id", h.getBranch)
		branches.PUT("/:id", h.updateBranch) // Editor or admin
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier) // Editor or admin
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.PUT("/:id", h.updateSupplier) // Editor or admin
	}
}

// handleOrgError maps service errors for reference data writes to HTTP responses.
func handleOrgError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMsg})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User lacks the role for this operation")
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			logger.Warn("Request rejected", slog.String("error", appErr.Message))
			c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
			return
		}
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// createSector godoc
// @Summary Create a sector
// @Tags org
// @Accept  json
// @Produce  json
// @Param   sector body dto.CreateSectorRequest true "Sector details"
// @Success 201 {object} dto.SectorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /sectors [post]
func (h *orgHandler) createSector(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sector, err := h.sectorService.CreateSector(c.Request.Context(), req, creatorUserID)
	if err != nil {
		handleOrgError(c, logger, err, "Sector not found", "Failed to create sector")
		return
	}

	logger.Info("Sector created", slog.String("sector_id", sector.SectorID))
	c.JSON(http.StatusCreated, dto.ToSectorResponse(sector))
}

// getSector godoc
// @Summary Get a sector by ID
// @Tags org
// @Produce  json
// @Param   id path string true "Sector ID"
// @Success 200 {object} dto.SectorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sectors/{id} [get]
func (h *orgHandler) getSector(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sector, err := h.sectorService.GetSectorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleOrgError(c, logger, err, "Sector not found", "Failed to retrieve sector")
		return
	}
	c.JSON(http.StatusOK, dto.ToSectorResponse(sector))
}

// listSectors godoc
// @Summary List sectors
// @Tags org
// @Produce  json
// @Success 200 {object} dto.ListSectorsResponse
// @Security BearerAuth
// @Router /sectors [get]
func (h *orgHandler) listSectors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sectors, err := h.sectorService.ListSectors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sectors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sectors"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListSectorsResponse(sectors))
}

// updateSector godoc
// @Summary Update a sector
// @Tags org
// @Accept  json
// @Produce  json
// @Param   id path string true "Sector ID"
// @Param   sector body dto.UpdateSectorRequest true "Sector details to update"
// @Success 200 {object} dto.SectorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sectors/{id} [put]
func (h *orgHandler) updateSector(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sector, err := h.sectorService.UpdateSector(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		handleOrgError(c, logger, err, "Sector not found", "Failed to update sector")
		return
	}
	c.JSON(http.StatusOK, dto.ToSectorResponse(sector))
}

// createBranch godoc
// @Summary Create a branch
// @Description Creates a branch under an existing sector
// @Tags org
// @Accept  json
// @Produce  json
// @Param   branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown sector"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches [post]
func (h *orgHandler) createBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), req, creatorUserID)
	if err != nil {
		handleOrgError(c, logger, err, "Branch not found", "Failed to create branch")
		return
	}

	logger.Info("Branch created", slog.String("branch_id", branch.BranchID))
	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

// getBranch godoc
// @Summary Get a branch by ID
// @Tags org
// @Produce  json
// @Param   id path string true "Branch ID"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{id} [get]
func (h *orgHandler) getBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branch, err := h.branchService.GetBranchByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleOrgError(c, logger, err, "Branch not found", "Failed to retrieve branch")
		return
	}
	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// listBranches godoc
// @Summary List branches
// @Description Lists branches, optionally restricted to one sector
// @Tags org
// @Produce  json
// @Param   sectorID query string false "Restrict to one sector"
// @Success 200 {object} dto.ListBranchesResponse
// @Security BearerAuth
// @Router /branches [get]
func (h *orgHandler) listBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branches, err := h.branchService.ListBranches(c.Request.Context(), c.Query("sectorID"))
	if err != nil {
		logger.Error("Failed to list branches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list branches"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListBranchesResponse(branches))
}

// updateBranch godoc
// @Summary Update a branch
// @Tags org
// @Accept  json
// @Produce  json
// @Param   id path string true "Branch ID"
// @Param   branch body dto.UpdateBranchRequest true "Branch details to update"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{id} [put]
func (h *orgHandler) updateBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		handleOrgError(c, logger, err, "Branch not found", "Failed to update branch")
		return
	}
	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags org
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [post]
func (h *orgHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req, creatorUserID)
	if err != nil {
		handleOrgError(c, logger, err, "Supplier not found", "Failed to create supplier")
		return
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// getSupplier godoc
// @Summary Get a supplier by ID
// @Tags org
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *orgHandler) getSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleOrgError(c, logger, err, "Supplier not found", "Failed to retrieve supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags org
// @Produce  json
// @Success 200 {object} dto.ListSuppliersResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *orgHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list suppliers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list suppliers"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListSuppliersResponse(suppliers))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags org
// @Accept  json
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Param   supplier body dto.UpdateSupplierRequest true "Supplier details to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *orgHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		handleOrgError(c, logger, err, "Supplier not found", "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}
