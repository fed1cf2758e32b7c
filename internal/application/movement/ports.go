package movement

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor de
// movimientos: actualización de ubicación, fila de historial y lectura del
// conjunto de cascada persisten (o se descartan) juntas.
type TxRunner interface {
	RunMove(ctx context.Context, fn func(
		parentRepo repository.ParentItemRepository,
		childRepo repository.ChildItemRepository,
		moveRepo repository.MoveHistoryRepository,
	) error) error
}
