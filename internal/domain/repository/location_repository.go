package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	List(limit, offset int) ([]*entity.Location, error)
	// ListByLocationType devuelve las ubicaciones de un tipo (para nombrar
	// bloqueantes al validar eliminación del tipo).
	ListByLocationType(locationTypeID string) ([]*entity.Location, error)
	Delete(id string) error
}
