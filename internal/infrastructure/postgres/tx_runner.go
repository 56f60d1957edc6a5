package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/NotSleepp/possbien/internal/application/ports"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db DB
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx ports.TxRepos) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := fn(txRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}

func txRepos(tx pgx.Tx) ports.TxRepos {
	return ports.TxRepos{
		Companies:   NewCompanyRepository(tx),
		Users:       NewUserRepository(tx),
		Roles:       NewRoleRepository(tx),
		Permissions: NewPermissionRepository(tx),
		Branches:    NewBranchRepository(tx),
		Warehouses:  NewWarehouseRepository(tx),
		Products:    NewProductRepository(tx),
		Stock:       NewStockRepository(tx),
		Movements:   NewStockMovementRepository(tx),
		Registers:   NewCashRegisterRepository(tx),
		Sessions:    NewCashSessionRepository(tx),
		Sales:       NewSaleRepository(tx),
		Sequences:   NewSequenceRepository(tx),
	}
}
