// Package ports define los puertos de salida que usan los casos de uso
// (transacciones, almacenamiento de objetos, PDF, caché y métricas).
package ports

import (
	"context"

	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Companies   repository.CompanyRepository
	Users       repository.UserRepository
	Roles       repository.RoleRepository
	Permissions repository.PermissionRepository
	Branches    repository.BranchRepository
	Warehouses  repository.WarehouseRepository
	Products    repository.ProductRepository
	Stock       repository.StockRepository
	Movements   repository.StockMovementRepository
	Registers   repository.CashRegisterRepository
	Sessions    repository.CashSessionRepository
	Sales       repository.SaleRepository
	Sequences   repository.SequenceRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx TxRepos) error) error
}
