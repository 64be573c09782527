package entity

import "time"

// Location representa una ubicación física del almacén (estantería, muelle, posición).
type Location struct {
	ID          string
	Code        string // único, no vacío (ej. A-01-03)
	Description string
	CreatedAt   time.Time
}
