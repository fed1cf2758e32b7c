package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// ItemTypeRepository define el puerto de persistencia para ItemType (DIP).
type ItemTypeRepository interface {
	Create(itemType *entity.ItemType) error
	GetByID(id string) (*entity.ItemType, error)
	Update(itemType *entity.ItemType) error
	List(category string, limit, offset int) ([]*entity.ItemType, error) // category vacío = todas
	Delete(id string) error
}
