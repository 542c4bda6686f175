package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInvalidRange = errors.New("rango de fechas inválido")
	ErrUnavailable  = errors.New("fuente de datos no disponible")
)

// ErrSuperseded la solicitud fue reemplazada por una más reciente del mismo usuario y reporte.
var ErrSuperseded = errors.New("solicitud reemplazada por una más reciente")
