package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/convertly/internal/apperrors"
	"github.com/SscSPs/convertly/internal/core/domain"
	portssvc "github.com/SscSPs/convertly/internal/core/ports/services"
	"github.com/SscSPs/convertly/internal/dto"
	"github.com/SscSPs/convertly/internal/middleware"
	"github.com/gin-gonic/gin"
)

// unitHandler handles HTTP requests related to units of measurement.
type unitHandler struct {
	unitService portssvc.UnitReaderSvc
}

func newUnitHandler(us portssvc.UnitReaderSvc) *unitHandler {
	return &unitHandler{unitService: us}
}

// registerUnitRoutes registers routes related to units.
func registerUnitRoutes(rg *gin.RouterGroup, unitService portssvc.UnitReaderSvc) {
	h := newUnitHandler(unitService)

	units := rg.Group("/units")
	{
		units.GET("", h.listUnitCategories)
		units.GET("/:category", h.getUnitCategory)
	}
}

// listUnitCategories godoc
// @Summary List unit categories
// @Description Lists every unit category with its base unit, display precision and units
// @Tags units
// @Produce  json
// @Success 200 {array} dto.UnitCategoryResponse
// @Failure 500 {object} map[string]string "Failed to list units"
// @Router /units [get]
func (h *unitHandler) listUnitCategories(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	categories := h.unitService.ListCategories(ctx)
	resp := make([]dto.UnitCategoryResponse, 0, len(categories))
	for _, category := range categories {
		units, err := h.unitService.ListUnits(ctx, category)
		if err != nil {
			logger.Error("Failed to list units from service", slog.String("category", string(category)), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list units"})
			return
		}
		resp = append(resp, dto.ToUnitCategoryResponse(category, units))
	}

	c.JSON(http.StatusOK, resp)
}

// getUnitCategory godoc
// @Summary Get a unit category
// @Description Retrieves one unit category and its units
// @Tags units
// @Produce  json
// @Param   category path string true "Unit category" Enums(length, weight, temperature, volume)
// @Success 200 {object} dto.UnitCategoryResponse
// @Failure 404 {object} map[string]string "Unknown unit category"
// @Failure 500 {object} map[string]string "Failed to list units"
// @Router /units/{category} [get]
func (h *unitHandler) getUnitCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	category, err := domain.ParseUnitCategory(c.Param("category"))
	if err != nil {
		logger.Warn("Unknown unit category requested", slog.String("category", c.Param("category")))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	units, err := h.unitService.ListUnits(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit category not found"})
			return
		}
		logger.Error("Failed to list units from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list units"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitCategoryResponse(category, units))
}
