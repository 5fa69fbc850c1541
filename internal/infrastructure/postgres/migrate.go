package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migraciones se ejecuta completo en cada arranque: todo es idempotente
// (IF NOT EXISTS / ON CONFLICT DO NOTHING), así que correrla dos veces no
// cambia nada.
var migraciones = []string{
	`CREATE TABLE IF NOT EXISTS ingenios (
		id UUID PRIMARY KEY,
		nombre TEXT NOT NULL UNIQUE,
		direccion TEXT NOT NULL DEFAULT '',
		nit TEXT NOT NULL DEFAULT '',
		celular TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		nivel_acceso TEXT NOT NULL CHECK (nivel_acceso IN ('jefe', 'sub-jefe', 'empleado')),
		ingenio_id UUID REFERENCES ingenios(id),
		activo BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS almacenes (
		id UUID PRIMARY KEY,
		nombre TEXT NOT NULL,
		ingenio_id UUID NOT NULL REFERENCES ingenios(id),
		UNIQUE (nombre, ingenio_id)
	)`,
	`CREATE TABLE IF NOT EXISTS variedades (
		id UUID PRIMARY KEY,
		nombre TEXT NOT NULL,
		ingenio_id UUID NOT NULL REFERENCES ingenios(id),
		UNIQUE (nombre, ingenio_id)
	)`,
	`CREATE TABLE IF NOT EXISTS productos (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		nombre TEXT NOT NULL,
		codigo TEXT NOT NULL UNIQUE,
		requiere_variedad BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS inventario (
		id UUID PRIMARY KEY,
		producto_id UUID NOT NULL REFERENCES productos(id),
		variedad TEXT NOT NULL DEFAULT '',
		lote TEXT NOT NULL,
		cantidad NUMERIC NOT NULL,
		cantidad_kg NUMERIC NOT NULL,
		unidad TEXT NOT NULL,
		estado TEXT NOT NULL DEFAULT 'seco' CHECK (estado IN ('mojado', 'seco')),
		fecha_entrada TIMESTAMPTZ NOT NULL DEFAULT now(),
		fecha_salida TIMESTAMPTZ,
		precio_venta_unitario NUMERIC,
		ingenio_id UUID NOT NULL REFERENCES ingenios(id),
		almacen_id UUID NOT NULL REFERENCES almacenes(id),
		UNIQUE (lote, ingenio_id)
	)`,
	`CREATE TABLE IF NOT EXISTS transacciones (
		id UUID PRIMARY KEY,
		tipo TEXT NOT NULL CHECK (tipo IN ('compra', 'venta', 'transformacion', 'secado', 'devolucion', 'servicio_secado', 'servicio_pelado')),
		nombre TEXT NOT NULL,
		fecha TIMESTAMPTZ NOT NULL DEFAULT now(),
		factura_uuid TEXT UNIQUE,
		total NUMERIC NOT NULL DEFAULT 0,
		observaciones TEXT NOT NULL DEFAULT '',
		ingenio_id UUID NOT NULL REFERENCES ingenios(id)
	)`,
	`CREATE TABLE IF NOT EXISTS detalle_transaccion (
		id UUID PRIMARY KEY,
		orden BIGSERIAL,
		transaccion_id UUID NOT NULL REFERENCES transacciones(id),
		producto_id UUID NOT NULL REFERENCES productos(id),
		variedad TEXT NOT NULL DEFAULT '',
		cantidad NUMERIC NOT NULL,
		cantidad_kg NUMERIC NOT NULL,
		unidad TEXT NOT NULL,
		precio_unitario NUMERIC NOT NULL DEFAULT 0,
		subtotal NUMERIC NOT NULL DEFAULT 0,
		lote TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS lote_ancestria (
		origen_item_id UUID NOT NULL REFERENCES inventario(id),
		derivado_item_id UUID NOT NULL REFERENCES inventario(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (derivado_item_id)
	)`,

	// Bases anteriores a los UUID de factura no tienen la columna.
	`ALTER TABLE transacciones ADD COLUMN IF NOT EXISTS factura_uuid TEXT UNIQUE`,

	`CREATE INDEX IF NOT EXISTS idx_inventario_ingenio ON inventario (ingenio_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transacciones_ingenio_fecha ON transacciones (ingenio_id, fecha)`,
	`CREATE INDEX IF NOT EXISTS idx_detalle_transaccion ON detalle_transaccion (transaccion_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lote_ancestria_origen ON lote_ancestria (origen_item_id)`,

	// Tablas del esquema viejo, reemplazadas por inventario + lote_ancestria.
	`DROP TABLE IF EXISTS detalle_transformacion`,
	`DROP TABLE IF EXISTS transformaciones`,
	`DROP TABLE IF EXISTS lotes`,

	// Catálogo fijo de productos.
	`INSERT INTO productos (nombre, codigo, requiere_variedad) VALUES
		('Arroz semilla', 'SEM', TRUE),
		('Arroz 3/4', 'T34', TRUE),
		('Arroz en chala', 'ACH', TRUE),
		('Arroz granillo', 'GRN', TRUE),
		('Arroz blanco', 'ARZ', TRUE),
		('Afrecho', 'AFR', FALSE),
		('Colilla', 'COL', TRUE),
		('Arroz popular', 'POP', TRUE)
	ON CONFLICT (codigo) DO NOTHING`,
}

// Migrate aplica el esquema completo al arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migraciones {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración: %w", err)
		}
	}
	return nil
}
