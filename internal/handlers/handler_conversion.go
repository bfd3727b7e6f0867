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

// conversionHandler handles unit and currency conversion requests.
type conversionHandler struct {
	unitService     portssvc.UnitConverterSvc
	currencyService portssvc.CurrencyConverterSvc
}

func newConversionHandler(us portssvc.UnitConverterSvc, cs portssvc.CurrencyConverterSvc) *conversionHandler {
	return &conversionHandler{unitService: us, currencyService: cs}
}

// registerConversionRoutes registers the conversion routes.
func registerConversionRoutes(rg *gin.RouterGroup, unitService portssvc.UnitConverterSvc, currencyService portssvc.CurrencyConverterSvc) {
	h := newConversionHandler(unitService, currencyService)

	conversions := rg.Group("/conversions")
	{
		conversions.GET("/unit", h.convertUnit)
		conversions.GET("/currency", h.convertCurrency)
	}
}

// convertUnit godoc
// @Summary Convert a value between units
// @Description Converts a value between two units of the same category. Results are rounded to 4 decimal places, 2 for temperature.
// @Tags conversions
// @Produce  json
// @Param   category query string true "Unit category" Enums(length, weight, temperature, volume)
// @Param   value    query string true "Value to convert"
// @Param   from     query string true "Source unit code" example(km)
// @Param   to       query string true "Target unit code" example(m)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Malformed query"
// @Failure 422 {object} map[string]string "Value or unit cannot be converted"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /conversions/unit [get]
func (h *conversionHandler) convertUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertUnitRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ConvertUnit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.unitService.ConvertUnit(c.Request.Context(), domain.UnitCategory(req.Category), req.Value, req.From, req.To)
	if err != nil {
		respondConversionError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

// convertCurrency godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount using the static mock exchange rates, through the base currency. Results are rounded to 4 decimal places.
// @Tags conversions
// @Produce  json
// @Param   amount query string true "Amount to convert"
// @Param   from   query string true "Source currency code" MinLength(3) MaxLength(3)
// @Param   to     query string true "Target currency code" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Malformed query"
// @Failure 422 {object} map[string]string "Amount or currency cannot be converted"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /conversions/currency [get]
func (h *conversionHandler) convertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ConvertCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.currencyService.ConvertCurrency(c.Request.Context(), req.Amount, req.From, req.To)
	if err != nil {
		respondConversionError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

func respondConversionError(c *gin.Context, logger *slog.Logger, err error) {
	if errors.Is(err, apperrors.ErrUnconvertible) {
		logger.Warn("Unconvertible input", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	logger.Error("Failed to convert", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
}
