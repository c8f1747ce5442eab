package main

import (
	"fmt"
	"log"

	"anupalan/internal/config"
	"anupalan/internal/email/noop"
	"anupalan/internal/email/ses"
	"anupalan/internal/handler"
	"anupalan/internal/port"
	"anupalan/internal/repository/postgres"
	"anupalan/internal/router"
	"anupalan/internal/service"
	s3storage "anupalan/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	employeeRepo := postgres.NewEmployeeRepo(db)
	compRepo := postgres.NewCompensationRepo(db)
	configRepo := postgres.NewConfigRepo(db)
	declarationRepo := postgres.NewDeclarationRepo(db)
	complianceRepo := postgres.NewComplianceRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Initialize storage and email
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	tenantSvc := service.NewTenantService(tenantRepo, userRepo)
	userSvc := service.NewUserService(userRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo, compRepo)
	configSvc := service.NewConfigService(configRepo)
	declarationSvc := service.NewDeclarationService(declarationRepo, employeeRepo)
	complianceSvc := service.NewComplianceService(employeeRepo, compRepo, declarationRepo, complianceRepo, configSvc)
	reportSvc := service.NewReportService(reportRepo, s3Client, emailSender, &cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	tenantH := handler.NewTenantHandler(tenantSvc)
	userH := handler.NewUserHandler(userSvc)
	employeeH := handler.NewEmployeeHandler(employeeSvc)
	declarationH := handler.NewDeclarationHandler(declarationSvc)
	configH := handler.NewConfigHandler(configSvc)
	complianceH := handler.NewComplianceHandler(complianceSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, tenantH, userH, employeeH, declarationH, configH, complianceH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
