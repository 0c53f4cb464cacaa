package main

import (
	"fmt"
	"log"

	"billbook/internal/config"
	"billbook/internal/email/noop"
	"billbook/internal/email/ses"
	"billbook/internal/handler"
	"billbook/internal/port"
	"billbook/internal/render"
	"billbook/internal/repository/postgres"
	"billbook/internal/router"
	"billbook/internal/service"
	s3storage "billbook/internal/storage/s3"
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
	userRepo := postgres.NewUserRepo(db)
	vendorRepo := postgres.NewVendorRepo(db)
	productRepo := postgres.NewProductRepo(db)
	billRepo := postgres.NewBillRepo(db)
	invoiceSeq := postgres.NewInvoiceSeqRepo(db)

	// Initialize collaborators
	renderer, err := render.NewRenderer(cfg.Seller)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
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

	var archive port.ObjectStorage
	if cfg.S3.Bucket != "" {
		archive, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	vendorSvc := service.NewVendorService(vendorRepo)
	productSvc := service.NewProductService(productRepo)
	billSvc := service.NewBillService(billRepo, vendorRepo, productRepo, invoiceSeq, renderer, emailSender, archive)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	vendorH := handler.NewVendorHandler(vendorSvc)
	productH := handler.NewProductHandler(productSvc)
	billH := handler.NewBillHandler(billSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, vendorH, productH, billH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
