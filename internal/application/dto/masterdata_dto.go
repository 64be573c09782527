package dto

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// ItemResponse artículo en listados.
type ItemResponse struct {
	ID        string `json:"id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// LocationResponse ubicación en listados.
type LocationResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// CreateLotRequest body para POST /api/lots. Expiry en formato YYYY-MM-DD;
// vacío = lote sin vencimiento.
type CreateLotRequest struct {
	ItemID string `json:"item_id"`
	Batch  string `json:"batch"`
	Expiry string `json:"expiry,omitempty"`
}

// LotResponse lote unido con su artículo.
type LotResponse struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	SKU       string `json:"sku"`
	ItemName  string `json:"item_name"`
	Batch     string `json:"batch"`
	Expiry    string `json:"expiry,omitempty"`
	CreatedAt string `json:"created_at"`
}
