package entity

import "time"

// Item representa un artículo (SKU) del almacén. Inmutable una vez creado:
// no existe operación de actualización ni de borrado.
type Item struct {
	ID        string
	SKU       string // único por almacén, no vacío
	Name      string
	CreatedAt time.Time
}
