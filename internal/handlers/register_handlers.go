package handlers

import (
	"net/http"

	"github.com/SscSPs/leave_tracker_app/cmd/docs"
	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/middleware"
	"github.com/SscSPs/leave_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	writeLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/", getStatus)

	setupAPIRoutes(r, services, middleware.RateLimit(writeLimiter))

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(r *gin.Engine, service *portssvc.ServiceContainer, writeLimit gin.HandlerFunc) {
	api := r.Group("/api")
	registerHomeRoutes(api)

	registerEmployeeRoutes(api, service.Employee, writeLimit)
	registerLeaveRoutes(api, service.Leave, writeLimit)
	registerOvertimeRoutes(api, service.Overtime, writeLimit)
	registerLeaveTypeRoutes(api, service.LeaveType, writeLimit)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
