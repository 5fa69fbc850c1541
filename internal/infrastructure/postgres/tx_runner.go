package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistemaarroz/ingenio-api/internal/application/auth"
	"github.com/sistemaarroz/ingenio-api/internal/application/ledger"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner y auth.RegistroRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventarioRepository,
	txRepo repository.TransaccionRepository,
	detRepo repository.DetalleRepository,
	ancRepo repository.LoteAncestroRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invRepo := NewInventarioRepository(tx)
	txRepo := NewTransaccionRepository(tx)
	detRepo := NewDetalleRepository(tx)
	ancRepo := NewLoteAncestroRepository(tx)

	if err := fn(invRepo, txRepo, detRepo, ancRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RegistroRunner variante del runner para el alta atómica de ingenio + jefe.
type RegistroRunner struct {
	pool *pgxpool.Pool
}

var _ auth.RegistroRunner = (*RegistroRunner)(nil)

// NewRegistroRunner construye el runner de registro con el pool.
func NewRegistroRunner(pool *pgxpool.Pool) *RegistroRunner {
	return &RegistroRunner{pool: pool}
}

// Run inicia una transacción con repos de ingenios y usuarios.
func (r *RegistroRunner) Run(ctx context.Context, fn func(
	ingRepo repository.IngenioRepository,
	usrRepo repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewIngenioRepository(tx), NewUsuarioRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
