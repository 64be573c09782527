package entity

import "time"

// Document metadatos de un archivo adjunto a un movimiento (remisión, CMR,
// foto de la carga). Los bytes viven en el blob store externo; aquí solo se
// guarda el locator opaco que este devuelve.
type Document struct {
	ID            string
	MovementID    string
	Filename      string
	StoredLocator string
	MIME          string
	SizeBytes     int64
	UploadedAt    time.Time
}
