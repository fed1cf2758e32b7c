package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/validation"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ItemTypeUseCase casos de uso CRUD para tipos de activo.
type ItemTypeUseCase struct {
	repo      repository.ItemTypeRepository
	validator *validation.ConstraintValidator
}

// NewItemTypeUseCase construye el caso de uso.
func NewItemTypeUseCase(repo repository.ItemTypeRepository, validator *validation.ConstraintValidator) *ItemTypeUseCase {
	return &ItemTypeUseCase{repo: repo, validator: validator}
}

// Create crea un nuevo tipo de activo. La categoría (parent|child) es
// obligatoria e inmutable después.
func (uc *ItemTypeUseCase) Create(in dto.CreateItemTypeRequest) (*dto.ItemTypeResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	itemType := &entity.ItemType{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(itemType); err != nil {
		return nil, err
	}
	return toItemTypeResponse(itemType), nil
}

// GetByID obtiene un tipo de activo por ID.
func (uc *ItemTypeUseCase) GetByID(id string) (*dto.ItemTypeResponse, error) {
	itemType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, nil
	}
	return toItemTypeResponse(itemType), nil
}

// Update actualiza el nombre de un tipo de activo.
func (uc *ItemTypeUseCase) Update(id string, in dto.UpdateItemTypeRequest) (*dto.ItemTypeResponse, error) {
	itemType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, nil
	}
	if in.Name != nil {
		itemType.Name = *in.Name
	}
	itemType.UpdatedAt = time.Now()
	if err := uc.repo.Update(itemType); err != nil {
		return nil, err
	}
	return toItemTypeResponse(itemType), nil
}

// List lista tipos de activo, opcionalmente filtrados por categoría.
func (uc *ItemTypeUseCase) List(category string, limit, offset int) (*dto.ItemTypeListResponse, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemTypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toItemTypeResponse(t))
	}
	return &dto.ItemTypeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un tipo de activo si ningún ítem de su categoría lo
// referencia; si no, devuelve *domain.DependencyError con el conteo.
func (uc *ItemTypeUseCase) Delete(id string) error {
	if err := uc.validator.EnsureItemTypeDeletable(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toItemTypeResponse(t *entity.ItemType) *dto.ItemTypeResponse {
	if t == nil {
		return nil
	}
	return &dto.ItemTypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
