package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/metrics"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name           string
	AllowedOrigins string         // CORS, lista separada por comas; vacío equivale a "*"
	Location       *time.Location // zona del health check
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *billing.CustomerUseCase
	InvoiceUC  *billing.InvoiceUseCase
	InvoicePDF *billing.PDFUseCase
	Metrics    *metrics.HTTPMetrics // opcional
	Log        *logger.Logger
}

// NewApp construye la aplicación Fiber con los middlewares comunes y registra las rutas.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(deps.Log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(deps.Log))
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(cfg.AllowedOrigins),
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions,
		}, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	Router(app, cfg, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, cfg AppConfig, deps RouterDeps) {
	health := healthHandler(cfg.Location)
	app.Get("/", health)
	app.Get("/health", health)
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	v1 := app.Group("/v1")

	// Las rutas fijas van antes de /:id.
	customers := v1.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Get("/", customerHandler.List)
	customers.Get("/seleccion", customerHandler.ListForSelection)
	customers.Get("/tipos-identificacion", customerHandler.IDTypes)
	customers.Get("/paginacion", customerHandler.Search)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	invoices := v1.Group("/facturas")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF, deps.Log)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/paginacion", invoiceHandler.Search)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
}

// healthHandler GET / y /health
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func healthHandler(loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}
	return func(c *fiber.Ctx) error {
		now := time.Now().In(loc)
		return c.JSON(dto.HealthResponse{
			Status: "ON",
			Time:   now.Format("15:04:05"),
			Date:   now.Format("02/01/2006"),
		})
	}
}

func allowedOrigins(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "*"
	}
	return s
}
