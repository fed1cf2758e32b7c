package assignment

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// AssignChildUseCase asigna, reasigna o desasigna un activo hijo de forma
// transaccional. La referencia al padre vive en el hijo, así que dos padres
// simultáneos son imposibles por construcción; el trabajo del caso de uso es
// que la transición sea atómica y quede registrada: una reasignación entre
// dos padres produce exactamente una fila de historial que captura ambos.
type AssignChildUseCase struct {
	txRunner   TxRunner
	childRepo  repository.ChildItemRepository
	parentRepo repository.ParentItemRepository
}

// NewAssignChildUseCase construye el caso de uso.
func NewAssignChildUseCase(
	txRunner TxRunner,
	childRepo repository.ChildItemRepository,
	parentRepo repository.ParentItemRepository,
) *AssignChildUseCase {
	return &AssignChildUseCase{
		txRunner:   txRunner,
		childRepo:  childRepo,
		parentRepo: parentRepo,
	}
}

// AssignInputDTO entrada para cambiar la asignación de un hijo.
// NewParentID nil desasigna.
type AssignInputDTO struct {
	ChildItemID string
	NewParentID *string
	ActorID     string
}

// Assign valida precondiciones fuera de la transacción y ejecuta la
// transición dentro de una: bloquea la fila del hijo y la de los padres
// involucrados (para ordenarse frente a un movimiento del padre en curso),
// cambia la referencia y escribe exactamente una fila de historial.
func (uc *AssignChildUseCase) Assign(ctx context.Context, input AssignInputDTO) (*dto.AssignmentResultResponse, error) {
	if input.ChildItemID == "" || input.ActorID == "" {
		return nil, domain.ErrInvalidInput
	}

	child, err := uc.childRepo.GetByID(input.ChildItemID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, domain.ErrNotFound
	}
	if input.NewParentID != nil {
		parent, err := uc.parentRepo.GetByID(*input.NewParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}

	var result *dto.AssignmentResultResponse

	err = uc.txRunner.RunAssignment(ctx, func(
		childRepo repository.ChildItemRepository,
		parentRepo repository.ParentItemRepository,
		assignRepo repository.AssignmentHistoryRepository,
	) error {
		locked, err := childRepo.GetForUpdate(input.ChildItemID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		previous := locked.ParentItemID

		// Bloquea los padres involucrados: una reasignación que retira al
		// hijo no puede intercalarse con un movimiento de ese padre; una de
		// las dos operaciones queda ordenada antes que la otra. Siempre en
		// orden de ID, para que dos transacciones sobre el mismo par de
		// padres nunca se esperen en cruz.
		parentIDs := make([]string, 0, 2)
		if previous != nil {
			parentIDs = append(parentIDs, *previous)
		}
		if input.NewParentID != nil && (previous == nil || *previous != *input.NewParentID) {
			parentIDs = append(parentIDs, *input.NewParentID)
		}
		sort.Strings(parentIDs)
		for _, parentID := range parentIDs {
			lockedParent, err := parentRepo.GetForUpdate(parentID)
			if err != nil {
				return err
			}
			if lockedParent == nil && input.NewParentID != nil && parentID == *input.NewParentID {
				// El nuevo padre desapareció entre la validación y la tx.
				return domain.ErrNotFound
			}
		}

		now := time.Now()
		if err := childRepo.UpdateParent(input.ChildItemID, input.NewParentID, now); err != nil {
			return err
		}

		change := &entity.AssignmentHistory{
			ChildItemID:      input.ChildItemID,
			PreviousParentID: previous,
			NewParentID:      input.NewParentID,
			ChangedAt:        now,
			ChangedBy:        input.ActorID,
		}
		if err := assignRepo.Create(change); err != nil {
			return err
		}

		result = &dto.AssignmentResultResponse{
			ChildItemID:      input.ChildItemID,
			PreviousParentID: previous,
			NewParentID:      input.NewParentID,
			ChangedAt:        now,
			ChangedBy:        input.ActorID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
