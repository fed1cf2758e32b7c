package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ChildItemUseCase casos de uso CRUD para activos hijo. La referencia al
// padre NO se muta aquí: el único camino de escritura es el gestor de
// asignaciones.
type ChildItemUseCase struct {
	repo         repository.ChildItemRepository
	itemTypeRepo repository.ItemTypeRepository
}

// NewChildItemUseCase construye el caso de uso.
func NewChildItemUseCase(
	repo repository.ChildItemRepository,
	itemTypeRepo repository.ItemTypeRepository,
) *ChildItemUseCase {
	return &ChildItemUseCase{repo: repo, itemTypeRepo: itemTypeRepo}
}

// Create crea un activo hijo sin asignar. El tipo debe existir y ser de
// categoría child.
func (uc *ChildItemUseCase) Create(createdBy string, in dto.CreateChildItemRequest) (*dto.ChildItemResponse, error) {
	itemType, err := uc.itemTypeRepo.GetByID(in.ItemTypeID)
	if err != nil {
		return nil, err
	}
	if itemType == nil || itemType.Category != entity.ItemCategoryChild {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.ChildItem{
		ID:         uuid.New().String(),
		SKU:        in.SKU,
		ItemTypeID: in.ItemTypeID,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatedBy:  createdBy,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toChildItemResponse(item), nil
}

// GetByID obtiene un activo hijo por ID.
func (uc *ChildItemUseCase) GetByID(id string) (*dto.ChildItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toChildItemResponse(item), nil
}

// Update actualiza SKU y/o tipo (manteniendo la categoría child).
func (uc *ChildItemUseCase) Update(id string, in dto.UpdateChildItemRequest) (*dto.ChildItemResponse, error) {
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
		if itemType == nil || itemType.Category != entity.ItemCategoryChild {
			return nil, domain.ErrInvalidInput
		}
		item.ItemTypeID = *in.ItemTypeID
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toChildItemResponse(item), nil
}

// List lista activos hijo, opcionalmente filtrados por tipo.
func (uc *ChildItemUseCase) List(itemTypeID string, limit, offset int) (*dto.ChildItemListResponse, error) {
	list, err := uc.repo.List(itemTypeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChildItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toChildItemResponse(it))
	}
	return &dto.ChildItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un activo hijo solo si está desasignado: primero hay que
// retirarlo de su padre por el gestor de asignaciones.
func (uc *ChildItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.ParentItemID != nil {
		return &domain.DependencyError{Resource: "child_item", Count: 1, Blockers: []string{*item.ParentItemID}}
	}
	return uc.repo.Delete(id)
}

func toChildItemResponse(it *entity.ChildItem) *dto.ChildItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ChildItemResponse{
		ID:           it.ID,
		SKU:          it.SKU,
		ItemTypeID:   it.ItemTypeID,
		ParentItemID: it.ParentItemID,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
		CreatedBy:    it.CreatedBy,
	}
}
