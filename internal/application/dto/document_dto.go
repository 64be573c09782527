package dto

// DocumentResponse metadatos de un documento adjunto a un movimiento.
type DocumentResponse struct {
	ID         string `json:"id"`
	MovementID string `json:"movement_id"`
	Filename   string `json:"filename"`
	MIME       string `json:"mime,omitempty"`
	SizeBytes  int64  `json:"size_bytes"`
	UploadedAt string `json:"uploaded_at"`
}
