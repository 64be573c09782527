package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// Detecta el 23505 directo y también envuelto con %w; otros códigos y errores
// ajenos a PostgreSQL no califican.
func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "items_sku_key"}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert item: %w", unique)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"})) // FK violation
	assert.False(t, isUniqueViolation(errors.New("23505 en el texto, no en el código")))
}
