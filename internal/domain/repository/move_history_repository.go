package repository

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// MoveHistoryFilter filtros para consultar historial de movimientos.
// LocationID coincide con origen o destino. El rango de fechas es inclusivo
// en ambos extremos.
type MoveHistoryFilter struct {
	ParentItemID string
	LocationID   string
	ItemTypeID   string
	From         *time.Time
	To           *time.Time
	Descending   bool // por defecto ascendente por moved_at
	Limit        int
	Offset       int
}

// MoveHistoryRepository define el puerto de persistencia para MoveHistory (DIP).
// Append-only: no existe update ni delete en ninguna capa.
type MoveHistoryRepository interface {
	Create(move *entity.MoveHistory) error
	List(filter MoveHistoryFilter) ([]*entity.MoveHistory, error)
	// LastForParentAt devuelve el último movimiento del padre con
	// moved_at <= at, o nil si aún no se había movido.
	LastForParentAt(parentItemID string, at time.Time) (*entity.MoveHistory, error)
}
