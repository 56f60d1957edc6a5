package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// CashRegisterRepository puerto de persistencia para cajas.
type CashRegisterRepository interface {
	Create(ctx context.Context, register *entity.CashRegister) error
	GetByID(ctx context.Context, companyID, id string) (*entity.CashRegister, error)
	// GetForUpdate bloquea la caja para serializar aperturas y cierres.
	GetForUpdate(ctx context.Context, companyID, id string) (*entity.CashRegister, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.CashRegister, error)
	ListByBranch(ctx context.Context, companyID, branchID string) ([]*entity.CashRegister, error)
	Update(ctx context.Context, register *entity.CashRegister) error
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, companyID, id string) error
}

// CashSessionRepository puerto de persistencia para sesiones (turnos) de caja.
type CashSessionRepository interface {
	Create(ctx context.Context, session *entity.CashSession) error
	GetByID(ctx context.Context, companyID, id string) (*entity.CashSession, error)
	GetOpenByRegister(ctx context.Context, companyID, registerID string) (*entity.CashSession, error)
	Close(ctx context.Context, session *entity.CashSession) error
	// TotalsByPaymentMethod suma el total de las ventas completadas de la sesión por método de pago.
	TotalsByPaymentMethod(ctx context.Context, sessionID string) (map[string]decimal.Decimal, error)
}
