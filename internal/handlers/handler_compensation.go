package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/SscSPs/hr_payroll_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// compensationHandler exposes the compensation builder and calculator.
type compensationHandler struct {
	compensationService portssvc.CompensationSvc
}

// RegisterCompensationRoutes registers the stateless compensation routes.
func RegisterCompensationRoutes(rg *gin.RouterGroup, compensationService portssvc.CompensationSvc) {
	h := &compensationHandler{compensationService: compensationService}

	compensation := rg.Group("/compensation")
	{
		compensation.POST("/build", h.buildCompensation)
		compensation.POST("/totals", h.computeTotals)
		compensation.GET("/statutory-estimate", h.estimateStatutory)
	}
}

// buildCompensation godoc
// @Summary Build a compensation structure
// @Description Applies catalog toggles and amounts to a draft and returns the finalized structure with totals.
// @Tags compensation
// @Accept  json
// @Produce  json
// @Param   request body dto.BuildCompensationRequest true "Draft, toggles and amounts"
// @Success 200 {object} dto.BuildCompensationResponse
// @Failure 400 {object} map[string]string "Invalid draft"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build compensation"
// @Security BearerAuth
// @Router /compensation/build [post]
func (h *compensationHandler) buildCompensation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BuildCompensationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BuildCompensation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	structure, err := h.compensationService.BuildCompensation(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to build compensation")
		return
	}

	totals, err := h.compensationService.ComputeTotals(c.Request.Context(), *structure)
	if err != nil {
		respondError(c, logger, err, "Failed to build compensation")
		return
	}
	statutory, err := h.compensationService.EstimateStatutory(c.Request.Context(), *structure)
	if err != nil {
		respondError(c, logger, err, "Failed to build compensation")
		return
	}

	c.JSON(http.StatusOK, dto.BuildCompensationResponse{
		Compensation: dto.ToCompensationPayload(*structure),
		Totals:       dto.ToCompensationTotalsResponse(totals),
		Statutory:    statutory,
	})
}

// computeTotals godoc
// @Summary Compute compensation totals
// @Tags compensation
// @Accept  json
// @Produce  json
// @Param   compensation body dto.CompensationPayload true "Compensation structure"
// @Success 200 {object} dto.CompensationTotalsResponse
// @Failure 400 {object} map[string]string "Invalid structure"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /compensation/totals [post]
func (h *compensationHandler) computeTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CompensationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeTotals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	totals, err := h.compensationService.ComputeTotals(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompensationTotalsResponse(totals))
}

// estimateStatutory godoc
// @Summary Estimate PF and ESI
// @Description Estimates employee and employer PF/ESI contributions for a basic salary. Unparseable or negative input counts as zero.
// @Tags compensation
// @Produce  json
// @Param   basic query string false "Basic salary"
// @Success 200 {object} domain.StatutoryEstimate
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /compensation/statutory-estimate [get]
func (h *compensationHandler) estimateStatutory(c *gin.Context) {
	var params dto.StatutoryEstimateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	basic := domain.CoerceAmount(string(params.Basic))
	c.JSON(http.StatusOK, h.compensationService.EstimatePfEsi(c.Request.Context(), basic))
}
