package router

import (
	"github.com/gin-gonic/gin"

	"anupalan/internal/config"
	"anupalan/internal/domain"
	"anupalan/internal/handler"
	"anupalan/internal/middleware"
	"anupalan/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	tenantH *handler.TenantHandler,
	userH *handler.UserHandler,
	employeeH *handler.EmployeeHandler,
	declarationH *handler.DeclarationHandler,
	configH *handler.ConfigHandler,
	complianceH *handler.ComplianceHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	hrOrAdmin := middleware.RequireRole(domain.RoleAdmin, domain.RoleHR)

	// User management (tenant-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Delete)

	// Employees and their compensation, declarations, statutory records
	employees := protected.Group("/employees")
	employees.POST("", hrOrAdmin, employeeH.Create)
	employees.GET("", hrOrAdmin, employeeH.List)
	employees.GET("/:id", employeeH.GetByID)
	employees.PUT("/:id", hrOrAdmin, employeeH.Update)
	employees.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), employeeH.Delete)

	employees.POST("/:id/compensation", hrOrAdmin, employeeH.AddCompensation)
	employees.GET("/:id/compensation", employeeH.GetCompensation)
	employees.GET("/:id/compensation/history", hrOrAdmin, employeeH.CompensationHistory)

	employees.PUT("/:id/declarations", declarationH.Upsert)
	employees.GET("/:id/declarations/:fy", declarationH.Get)

	employees.POST("/:id/pf", hrOrAdmin, complianceH.ComputePF)
	employees.GET("/:id/pf/:month", complianceH.GetPFRecord)
	employees.GET("/:id/pf-balance", complianceH.PFBalance)
	employees.POST("/:id/pf-withdrawal", hrOrAdmin, complianceH.Withdraw)
	employees.GET("/:id/pf-withdrawals", complianceH.ListWithdrawals)
	employees.POST("/:id/esi", hrOrAdmin, complianceH.ComputeESI)
	employees.POST("/:id/professional-tax", hrOrAdmin, complianceH.ComputePT)
	employees.POST("/:id/income-tax", hrOrAdmin, complianceH.ComputeIncomeTax)
	employees.GET("/:id/income-tax/:fy", complianceH.GetIncomeTaxRecord)

	// Declaration verification (HR or admin)
	declarations := protected.Group("/declarations")
	declarations.POST("/:id/verify", hrOrAdmin, declarationH.Verify)

	// Tenant-wide compliance runs
	compliance := protected.Group("/compliance")
	compliance.POST("/run", hrOrAdmin, complianceH.RunMonthly)

	// Statutory configuration (admin only)
	configGroup := protected.Group("/config")
	configGroup.Use(middleware.RequireRole(domain.RoleAdmin))
	configGroup.POST("", configH.Set)
	configGroup.GET("", configH.List)
	configGroup.GET("/:key/history", configH.History)
	configGroup.DELETE("/:key", configH.Deactivate)

	// Filing reports
	reports := protected.Group("/reports")
	reports.Use(hrOrAdmin)
	reports.POST("", reportH.Generate)
	reports.GET("", reportH.List)
	reports.GET("/export", reportH.ExportCSV)
	reports.GET("/:id", reportH.GetByID)
	reports.POST("/:id/submit", reportH.MarkSubmitted)
	reports.GET("/:id/download", reportH.DownloadURL)

	// Admin routes - tenant management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/tenants", tenantH.Create)
	admin.GET("/tenants", tenantH.List)
	admin.GET("/tenants/:id", tenantH.GetByID)
	admin.PUT("/tenants/:id", tenantH.Update)
	admin.DELETE("/tenants/:id", tenantH.Delete)

	return r
}
