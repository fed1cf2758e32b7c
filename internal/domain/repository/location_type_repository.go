package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// LocationTypeRepository define el puerto de persistencia para LocationType (DIP).
type LocationTypeRepository interface {
	Create(locationType *entity.LocationType) error
	GetByID(id string) (*entity.LocationType, error)
	Update(locationType *entity.LocationType) error
	List(limit, offset int) ([]*entity.LocationType, error)
	Delete(id string) error
}
