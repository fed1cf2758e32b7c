package assignment

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cambio de referencia al
// padre y su fila de historial persistan juntos.
type TxRunner interface {
	RunAssignment(ctx context.Context, fn func(
		childRepo repository.ChildItemRepository,
		parentRepo repository.ParentItemRepository,
		assignRepo repository.AssignmentHistoryRepository,
	) error) error
}
