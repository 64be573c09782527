package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema del ledger: datos maestros, proyección de inventario, log de
// movimientos y documentos adjuntos. Las FKs impiden borrar maestros
// referenciados; de todas formas la API no expone borrados.
const schema = `
CREATE TABLE IF NOT EXISTS items (
	id UUID PRIMARY KEY,
	sku TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS locations (
	id UUID PRIMARY KEY,
	code TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS lots (
	id UUID PRIMARY KEY,
	item_id UUID NOT NULL REFERENCES items(id),
	batch TEXT NOT NULL,
	expiry DATE,
	created_at TIMESTAMPTZ NOT NULL
);

-- El vencimiento ausente coalesce a un único valor vacío para la unicidad.
CREATE UNIQUE INDEX IF NOT EXISTS lots_item_batch_expiry_key
	ON lots (item_id, batch, COALESCE(expiry, DATE '0001-01-01'));

CREATE TABLE IF NOT EXISTS inventory (
	lot_id UUID NOT NULL REFERENCES lots(id),
	location_id UUID NOT NULL REFERENCES locations(id),
	pallets INTEGER NOT NULL DEFAULT 0,
	cases INTEGER NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (lot_id, location_id)
);

CREATE TABLE IF NOT EXISTS movements (
	id UUID PRIMARY KEY,
	direction TEXT NOT NULL CHECK (direction IN ('IN','OUT')),
	lot_id UUID NOT NULL REFERENCES lots(id),
	location_id UUID NOT NULL REFERENCES locations(id),
	pallets INTEGER NOT NULL CHECK (pallets >= 0),
	cases INTEGER NOT NULL CHECK (cases >= 0),
	partner TEXT NOT NULL DEFAULT '',
	reference TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	move_date DATE NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS documents (
	id UUID PRIMARY KEY,
	movement_id UUID NOT NULL REFERENCES movements(id),
	filename TEXT NOT NULL,
	stored_locator TEXT NOT NULL,
	mime TEXT NOT NULL DEFAULT '',
	size_bytes BIGINT NOT NULL DEFAULT 0,
	uploaded_at TIMESTAMPTZ NOT NULL
);
`

// InitSchema crea las tablas e índices si no existen todavía.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
