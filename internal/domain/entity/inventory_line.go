package entity

import "time"

// InventoryLine stock actual de un lote en una ubicación. Es una proyección
// materializada del log de movimientos: solo el ledger la escribe, y siempre
// es recomputable reproduciendo el log completo.
type InventoryLine struct {
	LotID      string
	LocationID string
	Pallets    int
	Cases      int
	UpdatedAt  time.Time
}

// InventoryView línea de inventario unida con artículo, lote y ubicación.
type InventoryView struct {
	LotID        string
	LocationID   string
	SKU          string
	ItemName     string
	Batch        string
	Expiry       *time.Time
	LocationCode string
	Pallets      int
	Cases        int
	UpdatedAt    time.Time
}
