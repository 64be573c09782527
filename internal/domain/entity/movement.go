package entity

import "time"

// Direcciones de movimiento.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// Movement evento de entrada o salida de stock contra un lote en una
// ubicación. Append-only: nunca se actualiza ni se borra después de creado.
// Pallets y Cases son magnitudes (>= 0); la dirección determina el signo del
// delta aplicado a la línea de inventario.
type Movement struct {
	ID         string
	Direction  string // IN | OUT
	LotID      string
	LocationID string
	Pallets    int
	Cases      int
	Partner    string // proveedor (IN) o destinatario (OUT)
	Reference  string
	Notes      string
	Date       time.Time // fecha de negocio, distinta de la de creación
	CreatedAt  time.Time
}

// MovementView movimiento unido con artículo, lote y ubicación para listados.
type MovementView struct {
	Movement
	SKU          string
	ItemName     string
	Batch        string
	Expiry       *time.Time
	LocationCode string
}
