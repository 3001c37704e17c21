package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/construtek/obras-api/internal/application/auth"
	"github.com/construtek/obras-api/internal/application/billing"
	"github.com/construtek/obras-api/internal/application/inventory"
	"github.com/construtek/obras-api/internal/application/ports"
	"github.com/construtek/obras-api/internal/application/usecase"
	infraai "github.com/construtek/obras-api/internal/infrastructure/ai"
	infrapdf "github.com/construtek/obras-api/internal/infrastructure/pdf"
	"github.com/construtek/obras-api/internal/infrastructure/postgres"
	"github.com/construtek/obras-api/internal/infrastructure/ubl"
	httpRouter "github.com/construtek/obras-api/internal/interfaces/http"
	"github.com/construtek/obras-api/pkg/config"
	"github.com/construtek/obras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	requestRepo := postgres.NewMaterialRequestRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	searchRepo := postgres.NewSearchRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	activityUC := usecase.NewActivityUseCase(activityRepo, userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, activityUC)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, activityUC)
	clientUC := usecase.NewClientUseCase(clientRepo, activityUC)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, activityUC)
	itemUC := usecase.NewInventoryItemUseCase(itemRepo, requestRepo, activityUC)
	materialRequestUC := inventory.NewMaterialRequestUseCase(txRunner, requestRepo, itemRepo, projectRepo)
	purchaseOrderUC := inventory.NewPurchaseOrderUseCase(txRunner, orderRepo, itemRepo, supplierRepo)
	assetUC := usecase.NewAssetUseCase(assetRepo, activityUC)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, projectRepo, activityUC)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, clientRepo, projectRepo, transactionRepo)
	searchUC := usecase.NewSearchUseCase(searchRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	// Exportación de facturas: PDF con maroto, XML UBL con etree.
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xmlBuilder := ubl.NewXMLBuilderService()
	exportUC := billing.NewExportUseCase(invoiceRepo, companyRepo, clientRepo, pdfGenerator, xmlBuilder)

	// Adaptador de IA según AI_PROVIDER (anthropic por defecto).
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "gemini":
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	default:
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}
	aiUC := usecase.NewAIUseCase(llm, projectRepo, requestRepo, invoiceRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Obras Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		CompanyUC:         companyUC,
		ProjectUC:         projectUC,
		EmployeeUC:        employeeUC,
		ClientUC:          clientUC,
		SupplierUC:        supplierUC,
		ItemUC:            itemUC,
		MaterialRequestUC: materialRequestUC,
		PurchaseOrderUC:   purchaseOrderUC,
		AssetUC:           assetUC,
		TransactionUC:     transactionUC,
		InvoiceUC:         invoiceUC,
		ExportUC:          exportUC,
		ActivityUC:        activityUC,
		SearchUC:          searchUC,
		AIUC:              aiUC,
		DashboardUC:       dashboardUC,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
