package entity

import "time"

// Lot representa un lote de producción de un artículo, con fecha de
// vencimiento opcional. Unicidad: (artículo, batch, vencimiento); la ausencia
// de vencimiento coalesce a un único valor vacío, de modo que dos lotes del
// mismo batch sin vencimiento son el mismo lote.
type Lot struct {
	ID        string
	ItemID    string
	Batch     string
	Expiry    *time.Time // nil = sin vencimiento
	CreatedAt time.Time
}

// LotView lote unido con su artículo para listados.
type LotView struct {
	Lot
	SKU      string
	ItemName string
}
