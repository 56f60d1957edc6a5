package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidCredentials  = errors.New("Credenciales inválidas")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrCashRegisterClosed  = errors.New("la caja no tiene una sesión abierta")
	ErrCashRegisterOpen    = errors.New("la caja ya tiene una sesión abierta")
	ErrInsufficientPayment = errors.New("el monto recibido no cubre el total")
	ErrSaleVoided          = errors.New("la venta ya está anulada")
	ErrStorageDisabled     = errors.New("almacenamiento de archivos no configurado")
)

// Error adjunta un mensaje para el cliente a uno de los errores centinela.
// errors.Is(err, domain.ErrNotFound) sigue funcionando.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Errorf construye un *Error del tipo kind con mensaje formateado.
func Errorf(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
