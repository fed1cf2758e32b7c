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

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	repo             repository.LocationRepository
	locationTypeRepo repository.LocationTypeRepository
	validator        *validation.ConstraintValidator
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(
	repo repository.LocationRepository,
	locationTypeRepo repository.LocationTypeRepository,
	validator *validation.ConstraintValidator,
) *LocationUseCase {
	return &LocationUseCase{repo: repo, locationTypeRepo: locationTypeRepo, validator: validator}
}

// Create crea una nueva ubicación validando que el tipo exista.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	locationType, err := uc.locationTypeRepo.GetByID(in.LocationTypeID)
	if err != nil {
		return nil, err
	}
	if locationType == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	location := &entity.Location{
		ID:             uuid.New().String(),
		Name:           in.Name,
		LocationTypeID: in.LocationTypeID,
		Metadata:       in.Metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza una ubicación.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.LocationTypeID != nil {
		locationType, err := uc.locationTypeRepo.GetByID(*in.LocationTypeID)
		if err != nil {
			return nil, err
		}
		if locationType == nil {
			return nil, domain.ErrInvalidInput
		}
		location.LocationTypeID = *in.LocationTypeID
	}
	if in.Metadata != nil {
		location.Metadata = in.Metadata
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones con paginación.
func (uc *LocationUseCase) List(limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una ubicación si ningún activo padre la tiene como actual;
// si no, devuelve *domain.DependencyError con el conteo.
func (uc *LocationUseCase) Delete(id string) error {
	if err := uc.validator.EnsureLocationDeletable(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:             l.ID,
		Name:           l.Name,
		LocationTypeID: l.LocationTypeID,
		Metadata:       l.Metadata,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
