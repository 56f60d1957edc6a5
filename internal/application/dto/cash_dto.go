package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashRegisterRequest entrada para crear una caja.
type CreateCashRegisterRequest struct {
	BranchID string `json:"id_sucursal" validate:"required,uuid"`
	Name     string `json:"nombre" validate:"required,min=1,max=100"`
}

// UpdateCashRegisterRequest actualización parcial de una caja.
type UpdateCashRegisterRequest struct {
	BranchID *string `json:"id_sucursal" validate:"omitempty,uuid"`
	Name     *string `json:"nombre" validate:"omitempty,min=1,max=100"`
}

// CashRegisterResponse salida de una caja.
type CashRegisterResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"id_empresa"`
	BranchID  string    `json:"id_sucursal"`
	Name      string    `json:"nombre"`
	Status    string    `json:"estado"`
	Deleted   bool      `json:"eliminado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OpenSessionRequest apertura de caja.
type OpenSessionRequest struct {
	OpeningAmount decimal.Decimal `json:"monto_apertura" validate:"gte=0"`
}

// CloseSessionRequest cierre de caja con el efectivo contado.
type CloseSessionRequest struct {
	CountedAmount decimal.Decimal `json:"monto_contado" validate:"gte=0"`
}

// CashSessionResponse salida de una sesión de caja.
type CashSessionResponse struct {
	ID             string                     `json:"id"`
	CashRegisterID string                     `json:"id_caja"`
	UserID         string                     `json:"id_usuario"`
	OpeningAmount  decimal.Decimal            `json:"monto_apertura"`
	CountedAmount  decimal.Decimal            `json:"monto_contado"`
	ExpectedAmount decimal.Decimal            `json:"monto_esperado"`
	Difference     decimal.Decimal            `json:"diferencia"`
	Status         string                     `json:"estado"`
	OpenedAt       time.Time                  `json:"abierta_en"`
	ClosedAt       *time.Time                 `json:"cerrada_en"`
	TotalsByMethod map[string]decimal.Decimal `json:"totales_por_metodo,omitempty"`
}
