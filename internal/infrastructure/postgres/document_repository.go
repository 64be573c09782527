package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del índice de documentos sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste los metadatos de un documento.
func (r *DocumentRepo) Create(document *entity.Document) error {
	query := `
		INSERT INTO documents (id, movement_id, filename, stored_locator, mime, size_bytes, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		document.ID, document.MovementID, document.Filename, document.StoredLocator,
		document.MIME, document.SizeBytes, document.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID; nil si no existe.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `
		SELECT id, movement_id, filename, stored_locator, mime, size_bytes, uploaded_at
		FROM documents WHERE id = $1`
	var d entity.Document
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.MovementID, &d.Filename, &d.StoredLocator, &d.MIME, &d.SizeBytes, &d.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListByMovement devuelve los documentos de un movimiento, más recientes primero.
func (r *DocumentRepo) ListByMovement(movementID string) ([]*entity.Document, error) {
	query := `
		SELECT id, movement_id, filename, stored_locator, mime, size_bytes, uploaded_at
		FROM documents WHERE movement_id = $1
		ORDER BY uploaded_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, movementID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.MovementID, &d.Filename, &d.StoredLocator, &d.MIME, &d.SizeBytes, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
