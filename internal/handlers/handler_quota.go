package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/SscSPs/hr_payroll_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterQuotaRoutes registers the plan quota route.
func RegisterQuotaRoutes(rg *gin.RouterGroup, quota portssvc.QuotaGate) {
	rg.GET("/quota", getQuota(quota))
}

// getQuota godoc
// @Summary Get employee quota
// @Description Reports the plan's employee limit and remaining capacity. A limit of -1 means unlimited.
// @Tags quota
// @Produce  json
// @Success 200 {object} dto.QuotaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get quota"
// @Security BearerAuth
// @Router /quota [get]
func getQuota(quota portssvc.QuotaGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		status, err := quota.GetQuotaStatus(c.Request.Context())
		if err != nil {
			respondError(c, logger, err, "Failed to get quota")
			return
		}
		c.JSON(http.StatusOK, dto.ToQuotaResponse(status))
	}
}
