package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ParentItemUseCase casos de uso CRUD para activos padre. La ubicación actual
// NO se muta aquí: el único camino de escritura es el motor de movimientos.
type ParentItemUseCase struct {
	repo         repository.ParentItemRepository
	childRepo    repository.ChildItemRepository
	itemTypeRepo repository.ItemTypeRepository
}

// NewParentItemUseCase construye el caso de uso.
func NewParentItemUseCase(
	repo repository.ParentItemRepository,
	childRepo repository.ChildItemRepository,
	itemTypeRepo repository.ItemTypeRepository,
) *ParentItemUseCase {
	return &ParentItemUseCase{repo: repo, childRepo: childRepo, itemTypeRepo: itemTypeRepo}
}

// Create crea un activo padre sin ubicar. El tipo debe existir y ser de
// categoría parent (polimorfismo suave validado en la frontera).
func (uc *ParentItemUseCase) Create(createdBy string, in dto.CreateParentItemRequest) (*dto.ParentItemResponse, error) {
	itemType, err := uc.itemTypeRepo.GetByID(in.ItemTypeID)
	if err != nil {
		return nil, err
	}
	if itemType == nil || itemType.Category != entity.ItemCategoryParent {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.ParentItem{
		ID:         uuid.New().String(),
		SKU:        in.SKU,
		ItemTypeID: in.ItemTypeID,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatedBy:  createdBy,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toParentItemResponse(item), nil
}

// GetByID obtiene un activo padre por ID.
func (uc *ParentItemUseCase) GetByID(id string) (*dto.ParentItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toParentItemResponse(item), nil
}

// Update actualiza SKU y/o tipo (manteniendo la categoría parent).
func (uc *ParentItemUseCase) Update(id string, in dto.UpdateParentItemRequest) (*dto.ParentItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.SKU != nil {
		item.SKU = *in.SKU
	}
	if in.ItemTypeID != nil {
		itemType, err := uc.itemTypeRepo.GetByID(*in.ItemTypeID)
		if err != nil {
			return nil, err
		}
		if itemType == nil || itemType.Category != entity.ItemCategoryParent {
			return nil, domain.ErrInvalidInput
		}
		item.ItemTypeID = *in.ItemTypeID
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toParentItemResponse(item), nil
}

// List lista activos padre, opcionalmente filtrados por tipo y/o ubicación.
func (uc *ParentItemUseCase) List(itemTypeID, locationID string, limit, offset int) (*dto.ParentItemListResponse, error) {
	list, err := uc.repo.List(itemTypeID, locationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ParentItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toParentItemResponse(it))
	}
	return &dto.ParentItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un activo padre solo si no tiene hijos asignados; la
// historia de movimientos se conserva (las filas de historial son inmutables).
func (uc *ParentItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	children, err := uc.childRepo.ListByParent(id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		blockers := make([]string, 0, len(children))
		for _, c := range children {
			blockers = append(blockers, c.SKU)
		}
		return &domain.DependencyError{Resource: "parent_item", Count: len(children), Blockers: blockers}
	}
	return uc.repo.Delete(id)
}

func toParentItemResponse(it *entity.ParentItem) *dto.ParentItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ParentItemResponse{
		ID:                it.ID,
		SKU:               it.SKU,
		ItemTypeID:        it.ItemTypeID,
		CurrentLocationID: it.CurrentLocationID,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
		CreatedBy:         it.CreatedBy,
	}
}
