package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgerrUniqueViolation = "23505"

// isUniqueViolation detecta la violación de un constraint único (SQLSTATE
// 23505). Es la señal con la que las altas de datos maestros tratan el
// duplicado como no-op: items por SKU, locations por código y lots por el
// índice de expresión (item, batch, vencimiento coalescido).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation
}
