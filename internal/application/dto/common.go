package dto

import "github.com/NotSleepp/possbien/pkg/validator"

// Paginación de listados.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ClampPage aplica los valores por defecto y el máximo a limit/offset.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code      string                 `json:"codigo"`
	Message   string                 `json:"mensaje"`
	Details   []validator.FieldError `json:"detalles,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// MessageResponse sobre de las respuestas de mutación: { mensaje, datos }.
type MessageResponse struct {
	Message string      `json:"mensaje"`
	Data    interface{} `json:"datos"`
}
