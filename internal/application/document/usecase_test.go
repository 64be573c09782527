package document_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/document"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/internal/infrastructure/memory"
)

// fakeBlobStore blob store en memoria para aislar el caso de uso del disco.
type fakeBlobStore struct {
	blobs map[string][]byte
	seq   int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStore) Store(content []byte, originalFilename string) (string, string, int64, error) {
	f.seq++
	locator := fmt.Sprintf("%d__%s", f.seq, originalFilename)
	f.blobs[locator] = content
	return locator, "application/octet-stream", int64(len(content)), nil
}

func (f *fakeBlobStore) Read(locator string) ([]byte, error) {
	content, ok := f.blobs[locator]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return content, nil
}

// countingMovements envuelve el repo de movimientos contando los GetByID.
type countingMovements struct {
	repository.MovementRepository
	getByIDCalls int
}

func (c *countingMovements) GetByID(id string) (*entity.Movement, error) {
	c.getByIDCalls++
	return c.MovementRepository.GetByID(id)
}

func newUseCase(t *testing.T) (*document.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return document.NewUseCase(store.Documents(), store.Movements(), newFakeBlobStore()), store
}

func seedMovement(t *testing.T, store *memory.Store, id string) {
	t.Helper()
	require.NoError(t, store.Movements().Create(&entity.Movement{
		ID:         id,
		Direction:  entity.DirectionIn,
		LotID:      "lote-1",
		LocationID: "ub-1",
		Pallets:    1,
		CreatedAt:  time.Now().UTC(),
	}))
}

// Adjuntar a un movimiento inexistente: ErrNotFound, sin blob huérfano.
func TestAttach_MovimientoInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Attach(context.Background(), "no-existe", "remito.pdf", []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Archivo vacío o sin nombre: ErrInvalidInput.
func TestAttach_Validacion(t *testing.T) {
	uc, store := newUseCase(t)
	seedMovement(t, store, "mov-1")

	_, err := uc.Attach(context.Background(), "mov-1", "  ", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Attach(context.Background(), "mov-1", "remito.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Adjuntar y listar: los documentos salen más recientes primero.
func TestAttach_YListado(t *testing.T) {
	uc, store := newUseCase(t)
	seedMovement(t, store, "mov-1")
	ctx := context.Background()

	first, err := uc.Attach(ctx, "mov-1", "remito.pdf", []byte("%PDF-1.4 remito"))
	require.NoError(t, err)
	second, err := uc.Attach(ctx, "mov-1", "packing.pdf", []byte("%PDF-1.4 packing"))
	require.NoError(t, err)

	docs, err := uc.ListByMovement(ctx, "mov-1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, second.ID, docs[0].ID, "el más reciente primero")
	assert.Equal(t, first.ID, docs[1].ID)
	assert.Equal(t, int64(len("%PDF-1.4 remito")), first.SizeBytes)
}

// Attach verifica el movimiento una sola vez: el registro de metadatos no
// repite la consulta.
func TestAttach_UnaSolaVerificacionDeMovimiento(t *testing.T) {
	store := memory.NewStore()
	seedMovement(t, store, "mov-1")
	movements := &countingMovements{MovementRepository: store.Movements()}
	uc := document.NewUseCase(store.Documents(), movements, newFakeBlobStore())

	_, err := uc.Attach(context.Background(), "mov-1", "remito.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, 1, movements.getByIDCalls)
}

// FetchBytes devuelve metadatos y bytes idénticos a los subidos.
func TestFetchBytes_RoundTrip(t *testing.T) {
	uc, store := newUseCase(t)
	seedMovement(t, store, "mov-1")
	ctx := context.Background()

	content := []byte("contenido del remito")
	doc, err := uc.Attach(ctx, "mov-1", "remito.txt", content)
	require.NoError(t, err)

	got, gotContent, err := uc.FetchBytes(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, "remito.txt", got.Filename)
	assert.Equal(t, content, gotContent)
}

// Documento inexistente: ErrNotFound.
func TestFetchBytes_Inexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, _, err := uc.FetchBytes(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
