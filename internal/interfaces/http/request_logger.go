package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/retail-analytics-api/pkg/logger"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = "request_id"
)

// RequestLogger asigna un request id (o respeta el del cliente) y registra
// método, ruta, status y latencia de cada solicitud.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)

		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// deja que el ErrorHandler de fiber escriba la respuesta antes de leer el status
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}

// GetRequestID id de la solicitud asignado por RequestLogger.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
