package repository

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// ParentItemRepository define el puerto de persistencia para ParentItem (DIP).
//
// GetForUpdate y UpdateLocation solo tienen sentido dentro de una transacción
// (repositorio atado a tx vía TxRunner): GetForUpdate bloquea la fila
// (SELECT FOR UPDATE) y UpdateLocation aplica el cambio de ubicación guardado
// por el contador de versión; si la versión ya no coincide no afecta filas.
type ParentItemRepository interface {
	Create(item *entity.ParentItem) error
	GetByID(id string) (*entity.ParentItem, error)
	GetBySKU(sku string) (*entity.ParentItem, error)
	GetForUpdate(id string) (*entity.ParentItem, error)
	// UpdateLocation mueve el ítem y avanza Version. Devuelve el número de
	// filas afectadas: 0 indica que la versión leída quedó obsoleta.
	UpdateLocation(id string, locationID string, version int, updatedAt time.Time) (int64, error)
	Update(item *entity.ParentItem) error
	List(itemTypeID, locationID string, limit, offset int) ([]*entity.ParentItem, error)
	CountByLocation(locationID string) (int, error)
	CountByItemType(itemTypeID string) (int, error)
	Delete(id string) error
}
