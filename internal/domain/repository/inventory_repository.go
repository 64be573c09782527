package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// InventoryRepository define el puerto para la proyección de stock por
// (lote, ubicación). Solo el ledger de movimientos debe escribirla.
type InventoryRepository interface {
	// GetForUpdate devuelve la línea actual bloqueándola dentro de la
	// transacción en curso (SELECT FOR UPDATE). Si la línea no existe aún,
	// devuelve una línea en cero; el adaptador puede materializarla para
	// garantizar el bloqueo por fila.
	GetForUpdate(lotID, locationID string) (*entity.InventoryLine, error)
	Upsert(line *entity.InventoryLine) error
	// ListCurrent devuelve las líneas con stock distinto de cero, unidas con
	// artículo, lote y ubicación; ordenadas por SKU, batch y código.
	ListCurrent() ([]*entity.InventoryView, error)
}
