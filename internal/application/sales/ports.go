// Package sales implementa el checkout del POS, la anulación de ventas y sus consultas.
package sales

import (
	"context"

	"github.com/NotSleepp/possbien/internal/application/inventory"
	"github.com/NotSleepp/possbien/internal/application/ports"
)

// InventoryUseCase integra ventas con el motor de inventario dentro de la misma transacción.
// Si retorna error (ej: ErrInsufficientStock) el caller debe hacer rollback.
type InventoryUseCase interface {
	RegisterOUTInTx(ctx context.Context, tx ports.TxRepos, lm inventory.LineMovement) error
	RegisterINInTx(ctx context.Context, tx ports.TxRepos, lm inventory.LineMovement) error
}
