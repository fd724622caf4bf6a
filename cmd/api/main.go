package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/estoquepro/estoque-api/internal/application/auth"
	"github.com/estoquepro/estoque-api/internal/application/inventory"
	"github.com/estoquepro/estoque-api/internal/application/report"
	"github.com/estoquepro/estoque-api/internal/application/usecase"
	infraexcel "github.com/estoquepro/estoque-api/internal/infrastructure/excel"
	"github.com/estoquepro/estoque-api/internal/infrastructure/memory"
	infrapdf "github.com/estoquepro/estoque-api/internal/infrastructure/pdf"
	httpRouter "github.com/estoquepro/estoque-api/internal/interfaces/http"
	"github.com/estoquepro/estoque-api/pkg/config"
	"github.com/estoquepro/estoque-api/pkg/logger"
	"github.com/estoquepro/estoque-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}
	if cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD es requerido")
	}

	// Repositorios en memoria. Todo el estado vive en el proceso: un
	// reinicio parte de cero (más el seed).
	companyRepo := memory.NewCompanyRepository()
	userRepo := memory.NewUserRepository()
	productRepo := memory.NewProductRepository()
	itemRepo := memory.NewInventoryItemRepository()
	txRepo := memory.NewTransactionRepository()
	txRunner := memory.NewTxRunner(itemRepo, txRepo)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	inventoryUC := usecase.NewInventoryItemUseCase(itemRepo, productRepo, companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	recordTxUC := inventory.NewRecordTransactionUseCase(txRunner)
	listTxUC := inventory.NewListTransactionsUseCase(txRepo, itemRepo, productRepo, companyRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	ledgerExporter := infraexcel.NewLedgerExporter()
	inventoryReportUC := report.NewInventoryReportUseCase(companyRepo, itemRepo, productRepo, pdfGenerator)
	ledgerExportUC := report.NewLedgerExportUseCase(txRepo, itemRepo, productRepo, companyRepo, ledgerExporter)

	revoker := auth.NewRevoker()
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, revoker)

	m := metrics.New(prometheus.DefaultRegisterer)

	if err := seed(cfg.Seed, authUC, companyUC, productUC, inventoryUC, log.Component("seed")); err != nil {
		log.Fatal().Err(err).Msg("seed inicial")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:       companyUC,
		ProductUC:       productUC,
		InventoryUC:     inventoryUC,
		UserUC:          userUC,
		RecordTx:        recordTxUC,
		ListTx:          listTxUC,
		InventoryReport: inventoryReportUC,
		LedgerExport:    ledgerExportUC,
		AuthUC:          authUC,
		Revoker:         revoker,
		UserRepo:        userRepo,
		CompanyRepo:     companyRepo,
		Metrics:         m,
		JWTSecret:       cfg.JWT.Secret,
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
