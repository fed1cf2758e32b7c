package repository

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// ChildItemRepository define el puerto de persistencia para ChildItem (DIP).
//
// GetForUpdate y UpdateParent se usan dentro de la transacción del gestor de
// asignaciones; ListByParent dentro de la transacción del motor de movimientos
// da la vista consistente del conjunto de cascada.
type ChildItemRepository interface {
	Create(item *entity.ChildItem) error
	GetByID(id string) (*entity.ChildItem, error)
	GetBySKU(sku string) (*entity.ChildItem, error)
	GetForUpdate(id string) (*entity.ChildItem, error)
	// UpdateParent cambia la referencia al padre (nil = desasignar).
	UpdateParent(id string, parentItemID *string, updatedAt time.Time) error
	Update(item *entity.ChildItem) error
	List(itemTypeID string, limit, offset int) ([]*entity.ChildItem, error)
	ListByParent(parentItemID string) ([]*entity.ChildItem, error)
	CountByItemType(itemTypeID string) (int, error)
	Delete(id string) error
}
