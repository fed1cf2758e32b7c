package validation

import (
	"fmt"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ConstraintValidator verificaciones de solo lectura previas a eliminaciones:
// una ubicación/tipo no se puede eliminar mientras existan dependientes.
// No muta nada; el caller decide si ejecuta o rechaza el delete.
//
// Esto es lo contrario del motor de movimientos: la eliminación se BLOQUEA
// por dependientes, el movimiento CASCADA a los hijos. Son mecanismos
// separados y no comparten código.
type ConstraintValidator struct {
	parentRepo       repository.ParentItemRepository
	childRepo        repository.ChildItemRepository
	locationRepo     repository.LocationRepository
	locationTypeRepo repository.LocationTypeRepository
	itemTypeRepo     repository.ItemTypeRepository
}

// NewConstraintValidator construye el validador.
func NewConstraintValidator(
	parentRepo repository.ParentItemRepository,
	childRepo repository.ChildItemRepository,
	locationRepo repository.LocationRepository,
	locationTypeRepo repository.LocationTypeRepository,
	itemTypeRepo repository.ItemTypeRepository,
) *ConstraintValidator {
	return &ConstraintValidator{
		parentRepo:       parentRepo,
		childRepo:        childRepo,
		locationRepo:     locationRepo,
		locationTypeRepo: locationTypeRepo,
		itemTypeRepo:     itemTypeRepo,
	}
}

// CanDeleteLocation verifica si una ubicación es eliminable: lo es cuando
// ningún activo padre la tiene como ubicación actual.
func (v *ConstraintValidator) CanDeleteLocation(locationID string) (*dto.DeleteCheckResponse, error) {
	location, err := v.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	count, err := v.parentRepo.CountByLocation(locationID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &dto.DeleteCheckResponse{
			CanDelete: false,
			Count:     count,
			Reason:    fmt.Sprintf("%d activo(s) padre tienen esta ubicación como actual", count),
		}, nil
	}
	return &dto.DeleteCheckResponse{CanDelete: true}, nil
}

// CanDeleteLocationType verifica si un tipo de ubicación es eliminable y, si
// no, nombra las ubicaciones bloqueantes.
func (v *ConstraintValidator) CanDeleteLocationType(locationTypeID string) (*dto.DeleteCheckResponse, error) {
	locationType, err := v.locationTypeRepo.GetByID(locationTypeID)
	if err != nil {
		return nil, err
	}
	if locationType == nil {
		return nil, domain.ErrNotFound
	}
	locations, err := v.locationRepo.ListByLocationType(locationTypeID)
	if err != nil {
		return nil, err
	}
	if len(locations) > 0 {
		blockers := make([]string, 0, len(locations))
		for _, l := range locations {
			blockers = append(blockers, l.Name)
		}
		return &dto.DeleteCheckResponse{
			CanDelete: false,
			Count:     len(locations),
			Reason:    fmt.Sprintf("%d ubicación(es) referencian este tipo", len(locations)),
			Blockers:  blockers,
		}, nil
	}
	return &dto.DeleteCheckResponse{CanDelete: true}, nil
}

// CanDeleteItemType verifica si un tipo de activo es eliminable: lo es cuando
// ningún ítem de su categoría lo referencia.
func (v *ConstraintValidator) CanDeleteItemType(itemTypeID string) (*dto.DeleteCheckResponse, error) {
	itemType, err := v.itemTypeRepo.GetByID(itemTypeID)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, domain.ErrNotFound
	}
	var count int
	switch itemType.Category {
	case entity.ItemCategoryParent:
		count, err = v.parentRepo.CountByItemType(itemTypeID)
	case entity.ItemCategoryChild:
		count, err = v.childRepo.CountByItemType(itemTypeID)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &dto.DeleteCheckResponse{
			CanDelete: false,
			Count:     count,
			Reason:    fmt.Sprintf("%d activo(s) de categoría %s referencian este tipo", count, itemType.Category),
		}, nil
	}
	return &dto.DeleteCheckResponse{CanDelete: true}, nil
}

// EnsureLocationDeletable devuelve nil si la ubicación es eliminable o un
// *domain.DependencyError con el conteo bloqueante.
func (v *ConstraintValidator) EnsureLocationDeletable(locationID string) error {
	check, err := v.CanDeleteLocation(locationID)
	if err != nil {
		return err
	}
	if !check.CanDelete {
		return &domain.DependencyError{Resource: "location", Count: check.Count, Blockers: check.Blockers}
	}
	return nil
}

// EnsureLocationTypeDeletable devuelve nil si el tipo de ubicación es
// eliminable o un *domain.DependencyError con las ubicaciones bloqueantes.
func (v *ConstraintValidator) EnsureLocationTypeDeletable(locationTypeID string) error {
	check, err := v.CanDeleteLocationType(locationTypeID)
	if err != nil {
		return err
	}
	if !check.CanDelete {
		return &domain.DependencyError{Resource: "location_type", Count: check.Count, Blockers: check.Blockers}
	}
	return nil
}

// EnsureItemTypeDeletable devuelve nil si el tipo de activo es eliminable o
// un *domain.DependencyError con el conteo bloqueante.
func (v *ConstraintValidator) EnsureItemTypeDeletable(itemTypeID string) error {
	check, err := v.CanDeleteItemType(itemTypeID)
	if err != nil {
		return err
	}
	if !check.CanDelete {
		return &domain.DependencyError{Resource: "item_type", Count: check.Count, Blockers: check.Blockers}
	}
	return nil
}
