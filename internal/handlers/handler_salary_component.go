package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/SscSPs/hr_payroll_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// salaryComponentHandler handles HTTP requests for the salary component catalog.
type salaryComponentHandler struct {
	catalogService portssvc.SalaryComponentSvcFacade
}

func newSalaryComponentHandler(cs portssvc.SalaryComponentSvcFacade) *salaryComponentHandler {
	return &salaryComponentHandler{catalogService: cs}
}

// RegisterSalaryComponentRoutes registers the catalog routes.
func RegisterSalaryComponentRoutes(rg *gin.RouterGroup, catalogService portssvc.SalaryComponentSvcFacade) {
	h := newSalaryComponentHandler(catalogService)

	components := rg.Group("/salary-components")
	{
		components.POST("", h.addSalaryComponent)
		components.GET("", h.listSalaryComponents)
		components.GET("/:componentID", h.getSalaryComponent)
		components.PUT("/:componentID", h.updateSalaryComponent)
		components.DELETE("/:componentID", h.removeSalaryComponent)
	}
}

// addSalaryComponent godoc
// @Summary Add a salary component
// @Description Adds an earning, deduction, benefit or reimbursement to the catalog.
// @Tags salary-components
// @Accept  json
// @Produce  json
// @Param   component body dto.SalaryComponentRequest true "Component details"
// @Success 201 {object} dto.SalaryComponentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to add salary component"
// @Security BearerAuth
// @Router /salary-components [post]
func (h *salaryComponentHandler) addSalaryComponent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SalaryComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddSalaryComponent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	component, err := h.catalogService.AddSalaryComponent(c.Request.Context(), req.ToDomain(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to add salary component")
		return
	}

	logger.Info("Salary component added", slog.String("component_id", component.ComponentID))
	c.JSON(http.StatusCreated, dto.ToSalaryComponentResponse(component))
}

// listSalaryComponents godoc
// @Summary List salary components
// @Description Lists catalog components. With selection=true the picker rules for the category apply.
// @Tags salary-components
// @Produce  json
// @Param   category query string false "Category" Enums(earnings, deductions, benefits, reimbursements)
// @Param   activeOnly query bool false "Only active components"
// @Param   selection query bool false "Apply picker rules; requires category"
// @Success 200 {array} dto.SalaryComponentResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list salary components"
// @Security BearerAuth
// @Router /salary-components [get]
func (h *salaryComponentHandler) listSalaryComponents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSalaryComponentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSalaryComponents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	category := domain.ComponentCategory(params.Category)
	var (
		components []domain.SalaryComponent
		err        error
	)
	if params.Selection {
		if category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category is required when selection is true"})
			return
		}
		components, err = h.catalogService.ListSelectableComponents(c.Request.Context(), category)
	} else {
		components, err = h.catalogService.ListSalaryComponents(c.Request.Context(), domain.ComponentFilter{
			Category:   category,
			ActiveOnly: params.ActiveOnly,
		})
	}
	if err != nil {
		respondError(c, logger, err, "Failed to list salary components")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalaryComponentResponse(components))
}

// getSalaryComponent godoc
// @Summary Get a salary component
// @Tags salary-components
// @Produce  json
// @Param   componentID path string true "Component ID"
// @Success 200 {object} dto.SalaryComponentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Salary component not found"
// @Failure 500 {object} map[string]string "Failed to get salary component"
// @Security BearerAuth
// @Router /salary-components/{componentID} [get]
func (h *salaryComponentHandler) getSalaryComponent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	componentID := c.Param("componentID")

	component, err := h.catalogService.GetSalaryComponent(c.Request.Context(), componentID)
	if err != nil {
		respondError(c, logger.With(slog.String("component_id", componentID)), err, "Failed to get salary component")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalaryComponentResponse(component))
}

// updateSalaryComponent godoc
// @Summary Update a salary component
// @Description Replaces a component. Once any employee uses it, only nameInPayslip may change.
// @Tags salary-components
// @Accept  json
// @Produce  json
// @Param   componentID path string true "Component ID"
// @Param   component body dto.SalaryComponentRequest true "Component details"
// @Success 200 {object} dto.SalaryComponentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Salary component not found"
// @Failure 409 {object} map[string]interface{} "Component is in use"
// @Failure 500 {object} map[string]string "Failed to update salary component"
// @Security BearerAuth
// @Router /salary-components/{componentID} [put]
func (h *salaryComponentHandler) updateSalaryComponent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	componentID := c.Param("componentID")

	var req dto.SalaryComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSalaryComponent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	component, err := h.catalogService.UpdateSalaryComponent(c.Request.Context(), componentID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("component_id", componentID)), err, "Failed to update salary component")
		return
	}

	logger.Info("Salary component updated", slog.String("component_id", componentID))
	c.JSON(http.StatusOK, dto.ToSalaryComponentResponse(component))
}

// removeSalaryComponent godoc
// @Summary Remove a salary component
// @Description Deletes an unused component; a component in use is deactivated instead.
// @Tags salary-components
// @Produce  json
// @Param   componentID path string true "Component ID"
// @Success 200 {object} dto.RemoveSalaryComponentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Salary component not found"
// @Failure 500 {object} map[string]string "Failed to remove salary component"
// @Security BearerAuth
// @Router /salary-components/{componentID} [delete]
func (h *salaryComponentHandler) removeSalaryComponent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	componentID := c.Param("componentID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	deactivated, err := h.catalogService.RemoveSalaryComponent(c.Request.Context(), componentID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("component_id", componentID)), err, "Failed to remove salary component")
		return
	}

	logger.Info("Salary component removed", slog.String("component_id", componentID), slog.Bool("deactivated", deactivated))
	c.JSON(http.StatusOK, dto.RemoveSalaryComponentResponse{
		ComponentID: componentID,
		Deactivated: deactivated,
		RemovedAt:   time.Now().UTC(),
	})
}
