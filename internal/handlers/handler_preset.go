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

// presetHandler handles HTTP requests for saved reporting filter presets.
type presetHandler struct {
	presetService portssvc.FilterPresetSvc
}

func newPresetHandler(ps portssvc.FilterPresetSvc) *presetHandler {
	return &presetHandler{
		presetService: ps,
	}
}

// registerPresetRoutes registers the filter preset routes.
func registerPresetRoutes(rg *gin.RouterGroup, presetService portssvc.FilterPresetSvc) {
	h := newPresetHandler(presetService)

	presets := rg.Group("/presets")
	{
		presets.POST("", h.savePreset)
		presets.GET("", h.listPresets)
		presets.GET("/:id", h.getPreset)
		presets.DELETE("/:id", h.deletePreset)
	}
}

// savePreset godoc
// @Summary Save a filter preset
// @Description Stores a named reporting filter for the logged-in user
// @Tags presets
// @Accept  json
// @Produce  json
// @Param   preset body dto.SaveFilterPresetRequest true "Preset details"
// @Success 201 {object} dto.FilterPresetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets [post]
func (h *presetHandler) savePreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveFilterPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	preset, err := h.presetService.SavePreset(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to save preset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save preset"})
		return
	}

	logger.Info("Preset saved", slog.String("preset_id", preset.PresetID))
	c.JSON(http.StatusCreated, dto.ToFilterPresetResponse(preset))
}

// getPreset godoc
// @Summary Get a filter preset by ID
// @Description Retrieves one of the logged-in user's presets. Other users' presets appear as not found.
// @Tags presets
// @Produce  json
// @Param   id path string true "Preset ID"
// @Success 200 {object} dto.FilterPresetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Preset not found"
// @Security BearerAuth
// @Router /presets/{id} [get]
func (h *presetHandler) getPreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	presetID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	preset, err := h.presetService.GetPreset(c.Request.Context(), presetID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Preset not found"})
			return
		}
		logger.Error("Failed to get preset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve preset"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFilterPresetResponse(preset))
}

// listPresets godoc
// @Summary List the logged-in user's filter presets
// @Tags presets
// @Produce  json
// @Success 200 {object} dto.ListFilterPresetsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /presets [get]
func (h *presetHandler) listPresets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	presets, err := h.presetService.ListPresets(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list presets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list presets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFilterPresetsResponse(presets))
}

// deletePreset godoc
// @Summary Delete a filter preset
// @Description Deletes one of the logged-in user's presets
// @Tags presets
// @Produce  json
// @Param   id path string true "Preset ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Preset not found"
// @Security BearerAuth
// @Router /presets/{id} [delete]
func (h *presetHandler) deletePreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	presetID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.presetService.DeletePreset(c.Request.Context(), presetID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Preset not found"})
			return
		}
		logger.Error("Failed to delete preset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete preset"})
		return
	}

	logger.Info("Preset deleted", slog.String("preset_id", presetID))
	c.Status(http.StatusNoContent)
}
