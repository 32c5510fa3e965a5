package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/infrastructure/metrics"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

// routeUnmatched etiqueta de métricas para peticiones que no coinciden con ninguna ruta.
const routeUnmatched = "unmatched"

// RequestLogger registra cada petición con método, ruta, estado, latencia e id de petición.
// Debe ir después de requestid para que el id esté disponible.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := statusOf(c, err)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Str("request_id", requestID(c)).
			Msg("request")
		return err
	}
}

// Metrics cuenta peticiones y mide su duración por método y patrón de ruta.
func Metrics(m *metrics.HTTPMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
			route = routeUnmatched
		}
		status := strconv.Itoa(statusOf(c, err))
		m.RequestsTotal.WithLabelValues(c.Method(), route, status).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// statusOf estado final de la respuesta; si el handler devolvió un error todavía no se ha
// escrito, así que se deduce del error.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
