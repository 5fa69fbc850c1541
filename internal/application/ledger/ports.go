package ledger

import (
	"context"

	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las operaciones del
// libro mayor: o se persisten todas las escrituras o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventarioRepository,
		txRepo repository.TransaccionRepository,
		detRepo repository.DetalleRepository,
		ancRepo repository.LoteAncestroRepository,
	) error) error
}
