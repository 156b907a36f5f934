package handlers

import (
	"github.com/SscSPs/hr_payroll_admin/cmd/docs"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/middleware"
	"github.com/SscSPs/hr_payroll_admin/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// importLimiter may be nil to leave roster uploads unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	importLimiter *limiter.Limiter,
) {
	r.GET("/health", healthCheck)

	setupAPIV1Routes(r, cfg, services, importLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	importLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	RegisterSalaryComponentRoutes(v1, service.SalaryComponent)
	RegisterCompensationRoutes(v1, service.Compensation)
	RegisterEmployeeRoutes(v1, service.Employee, service.RosterImport, ImportSettings{
		MaxUploadBytes:    cfg.RosterMaxUploadBytes,
		ErrorDisplayLimit: cfg.RosterErrorDisplayLimit,
		RateLimiter:       importLimiter,
	})
	RegisterQuotaRoutes(v1, service.Quota)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
