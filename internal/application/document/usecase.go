package document

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// UseCase índice de documentos adjuntos: asocia metadatos de archivos a un
// movimiento y delega los bytes al blob store externo.
type UseCase struct {
	documents repository.DocumentRepository
	movements repository.MovementRepository
	blobs     BlobStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	documents repository.DocumentRepository,
	movements repository.MovementRepository,
	blobs BlobStore,
) *UseCase {
	return &UseCase{documents: documents, movements: movements, blobs: blobs}
}

// Register registra los metadatos de un blob ya almacenado sobre un movimiento
// existente. Movimiento inexistente: ErrNotFound (integridad referencial).
func (uc *UseCase) Register(ctx context.Context, movementID, filename, storedLocator, mime string, sizeBytes int64) (*entity.Document, error) {
	filename = strings.TrimSpace(filename)
	if movementID == "" || filename == "" || storedLocator == "" {
		return nil, domain.ErrInvalidInput
	}
	movement, err := uc.movements.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	return uc.register(movementID, filename, storedLocator, mime, sizeBytes)
}

// register persiste los metadatos sin volver a verificar el movimiento.
func (uc *UseCase) register(movementID, filename, storedLocator, mime string, sizeBytes int64) (*entity.Document, error) {
	doc := &entity.Document{
		ID:            uuid.New().String(),
		MovementID:    movementID,
		Filename:      filename,
		StoredLocator: storedLocator,
		MIME:          mime,
		SizeBytes:     sizeBytes,
		UploadedAt:    time.Now().UTC(),
	}
	if err := uc.documents.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Attach guarda los bytes en el blob store y registra los metadatos del
// documento resultante sobre el movimiento. El movimiento se verifica una sola
// vez, antes de escribir los bytes, así un ID inexistente se rechaza sin tocar
// el blob store. Si el insert de metadatos falla después de escribir, el blob
// queda huérfano en disco; es inofensivo (ninguna fila lo referencia) pero no
// se limpia solo.
func (uc *UseCase) Attach(ctx context.Context, movementID, filename string, content []byte) (*entity.Document, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" || len(content) == 0 {
		return nil, domain.ErrInvalidInput
	}
	movement, err := uc.movements.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	locator, mime, size, err := uc.blobs.Store(content, filename)
	if err != nil {
		return nil, err
	}
	return uc.register(movementID, filename, locator, mime, size)
}

// ListByMovement devuelve los documentos de un movimiento, más recientes primero.
func (uc *UseCase) ListByMovement(ctx context.Context, movementID string) ([]*entity.Document, error) {
	if movementID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.documents.ListByMovement(movementID)
}

// FetchBytes resuelve el locator del documento en el blob store y devuelve los
// metadatos junto con los bytes crudos. Documento o blob inexistente: ErrNotFound.
func (uc *UseCase) FetchBytes(ctx context.Context, documentID string) (*entity.Document, []byte, error) {
	if documentID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	doc, err := uc.documents.GetByID(documentID)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, domain.ErrNotFound
	}
	content, err := uc.blobs.Read(doc.StoredLocator)
	if err != nil {
		return nil, nil, err
	}
	return doc, content, nil
}
