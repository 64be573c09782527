package dto

// BookMovementRequest body para POST /api/inventory/movements.
// Date en formato YYYY-MM-DD; vacío = fecha de hoy.
type BookMovementRequest struct {
	Direction  string `json:"direction"` // IN | OUT
	LotID      string `json:"lot_id"`
	LocationID string `json:"location_id"`
	Pallets    int    `json:"pallets"`
	Cases      int    `json:"cases"`
	Partner    string `json:"partner,omitempty"` // proveedor (IN) o destinatario (OUT)
	Reference  string `json:"reference,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Date       string `json:"date,omitempty"`
}

// MovementResponse movimiento unido para listados.
type MovementResponse struct {
	ID           string `json:"id"`
	Direction    string `json:"direction"`
	Date         string `json:"date"`
	SKU          string `json:"sku"`
	ItemName     string `json:"item_name"`
	Batch        string `json:"batch"`
	Expiry       string `json:"expiry,omitempty"`
	LocationCode string `json:"location_code"`
	Pallets      int    `json:"pallets"`
	Cases        int    `json:"cases"`
	Partner      string `json:"partner,omitempty"`
	Reference    string `json:"reference,omitempty"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// InventoryRowResponse línea de stock actual unida para mostrar.
type InventoryRowResponse struct {
	LotID        string `json:"lot_id"`
	LocationID   string `json:"location_id"`
	SKU          string `json:"sku"`
	ItemName     string `json:"item_name"`
	Batch        string `json:"batch"`
	Expiry       string `json:"expiry,omitempty"`
	LocationCode string `json:"location_code"`
	Pallets      int    `json:"pallets"`
	Cases        int    `json:"cases"`
	UpdatedAt    string `json:"updated_at"`
}
