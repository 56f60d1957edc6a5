package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/pkg/logger"
)

const (
	// RequestIDHeader header de propagación del id de petición.
	RequestIDHeader = "X-Request-ID"
	// LocalRequestID key del id de petición en c.Locals.
	LocalRequestID = "request_id"

	localLogger        = "logger"
	maxRequestIDLength = 128
)

// RequestID toma X-Request-ID de la petición (o genera un UUID) y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// GetRequestID devuelve el id de la petición actual.
func GetRequestID(c *fiber.Ctx) string { return localString(c, LocalRequestID) }

// RequestLogger emite un evento por petición con request_id, method, route, status, latency_ms y company_id.
// Los errores de la cadena se resuelven aquí con el ErrorHandler de la app para registrar el status final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqLog := logger.From(log.With().Str("request_id", GetRequestID(c)).Logger())
		c.Locals(localLogger, reqLog)

		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = reqLog.Error()
		case status >= fiber.StatusBadRequest:
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("route", routePattern(c)).
			Int("status", status).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000).
			Str("company_id", GetCompanyID(c)).
			Msg("petición HTTP")
		return nil
	}
}

// requestLogger devuelve el logger de la petición o uno que descarta todo.
func requestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}

// httpObserver lo implementa *telemetry.Metrics.
type httpObserver interface {
	ObserveHTTP(method, path string, status int, seconds float64)
}

// Metrics cuenta peticiones y latencia por patrón de ruta. Debe ir antes de RequestLogger
// para leer el status ya resuelto por el ErrorHandler.
func Metrics(obs httpObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		obs.ObserveHTTP(c.Method(), routePattern(c), status, time.Since(start).Seconds())
		return err
	}
}

// routePattern devuelve el patrón registrado (/api/productos/:id) y no la URL concreta.
func routePattern(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
		return r.Path
	}
	return c.Path()
}
