package repository

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AssignmentHistoryFilter filtros para consultar historial de asignaciones.
// ParentItemID coincide con padre anterior o nuevo.
type AssignmentHistoryFilter struct {
	ChildItemID  string
	ParentItemID string
	Limit        int
	Offset       int
}

// AssignmentHistoryRepository define el puerto de persistencia para
// AssignmentHistory (DIP). Append-only: no existe update ni delete.
type AssignmentHistoryRepository interface {
	Create(change *entity.AssignmentHistory) error
	List(filter AssignmentHistoryFilter) ([]*entity.AssignmentHistory, error)
	// LastForChildAt devuelve el último cambio de asignación del hijo con
	// changed_at <= at, o nil si nunca se ha asignado.
	LastForChildAt(childItemID string, at time.Time) (*entity.AssignmentHistory, error)
}
