package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/pkg/logger"
)

// Códigos de error expuestos en dto.ErrorResponse.
const (
	CodeValidation  = "VALIDATION"
	CodeNotFound    = "NOT_FOUND"
	CodeSuperseded  = "SUPERSEDED"
	CodeUnavailable = "DATA_SOURCE_UNAVAILABLE"
)

// respondError traduce un error del caso de uso a status + cuerpo.
// Las fallas de la fuente se registran con el detalle y el cliente solo ve un mensaje genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrSuperseded), errors.Is(err, context.Canceled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: CodeSuperseded, Message: "la solicitud fue reemplazada por una más reciente",
		})
	default:
		log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("path", c.Path()).
			Msg("generación de reporte fallida")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: CodeUnavailable, Message: "no se pudieron obtener los datos, intente de nuevo",
		})
	}
}
