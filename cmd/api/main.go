// @title        Facturación API
// @version      1.0
// @description  API REST de clientes y facturas con búsqueda paginada.
// @BasePath     /
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/facturacion-api/docs"
	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/memory"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/facturacion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/facturacion-api/internal/interfaces/http"
	"github.com/jhoicas/facturacion-api/pkg/config"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "aplica las migraciones y termina")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		customerRepo repository.CustomerRepository
		invoiceRepo  repository.InvoiceRepository
		pool         *pgxpool.Pool
	)
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		customerRepo, invoiceRepo = store.Customers(), store.Invoices()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate || *migrateOnly {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		customerRepo = postgres.NewCustomerRepository(pool)
		invoiceRepo = postgres.NewInvoiceRepository(pool)
	}
	if *migrateOnly {
		return
	}

	criteria := search.NewBuilder(cfg.App.Location())
	customerUC := billing.NewCustomerUseCase(customerRepo, criteria)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, customerRepo, criteria)

	// PDF: representación impresa de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, pdfGenerator)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:           cfg.App.Name,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Location:       cfg.App.Location(),
	}, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		InvoiceUC:  invoiceUC,
		InvoicePDF: invoicePDFUC,
		Metrics:    metrics.NewHTTPMetrics("facturacion"),
		Log:        log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Facturación API",
	}))

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
