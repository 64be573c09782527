package ledger

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios del ledger atados a esa transacción. Garantiza que el alta del
// movimiento y la actualización de la línea de inventario sean una sola unidad
// atómica: o se aplican ambas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movements repository.MovementRepository,
		inventory repository.InventoryRepository,
	) error) error
}
