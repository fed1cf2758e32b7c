package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/validation"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// LocationTypeUseCase casos de uso CRUD para tipos de ubicación.
type LocationTypeUseCase struct {
	repo      repository.LocationTypeRepository
	validator *validation.ConstraintValidator
}

// NewLocationTypeUseCase construye el caso de uso.
func NewLocationTypeUseCase(repo repository.LocationTypeRepository, validator *validation.ConstraintValidator) *LocationTypeUseCase {
	return &LocationTypeUseCase{repo: repo, validator: validator}
}

// Create crea un nuevo tipo de ubicación.
func (uc *LocationTypeUseCase) Create(in dto.CreateLocationTypeRequest) (*dto.LocationTypeResponse, error) {
	now := time.Now()
	locationType := &entity.LocationType{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(locationType); err != nil {
		return nil, err
	}
	return toLocationTypeResponse(locationType), nil
}

// GetByID obtiene un tipo de ubicación por ID.
func (uc *LocationTypeUseCase) GetByID(id string) (*dto.LocationTypeResponse, error) {
	locationType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if locationType == nil {
		return nil, nil
	}
	return toLocationTypeResponse(locationType), nil
}

// Update actualiza un tipo de ubicación.
func (uc *LocationTypeUseCase) Update(id string, in dto.UpdateLocationTypeRequest) (*dto.LocationTypeResponse, error) {
	locationType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if locationType == nil {
		return nil, nil
	}
	if in.Name != nil {
		locationType.Name = *in.Name
	}
	locationType.UpdatedAt = time.Now()
	if err := uc.repo.Update(locationType); err != nil {
		return nil, err
	}
	return toLocationTypeResponse(locationType), nil
}

// List lista tipos de ubicación con paginación.
func (uc *LocationTypeUseCase) List(limit, offset int) (*dto.LocationTypeListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationTypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toLocationTypeResponse(t))
	}
	return &dto.LocationTypeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un tipo de ubicación si ninguna ubicación lo referencia;
// si no, devuelve *domain.DependencyError con las bloqueantes.
func (uc *LocationTypeUseCase) Delete(id string) error {
	if err := uc.validator.EnsureLocationTypeDeletable(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toLocationTypeResponse(t *entity.LocationType) *dto.LocationTypeResponse {
	if t == nil {
		return nil
	}
	return &dto.LocationTypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
