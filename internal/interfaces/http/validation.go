package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-analytics-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct aplica los tags `validate` y resume los campos inválidos.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "datetime":
		return fmt.Sprintf("%s debe tener formato YYYY-MM-DD", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", fe.Field(), fe.Param())
	case "required":
		return fmt.Sprintf("%s es obligatorio", fe.Field())
	case "min", "max", "gte":
		return fmt.Sprintf("%s fuera de rango (%s=%s)", fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag())
	}
}

// bindQuery parsea y valida los query params.
func bindQuery(c *fiber.Ctx, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return fmt.Errorf("%w: parámetros de consulta inválidos", domain.ErrInvalidInput)
	}
	return validateStruct(dst)
}

// bindBody parsea y valida un cuerpo JSON.
func bindBody(c *fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return validateStruct(dst)
	}
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("%w: cuerpo JSON inválido", domain.ErrInvalidInput)
	}
	return validateStruct(dst)
}
