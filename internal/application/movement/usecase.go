package movement

import (
	"context"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// MoveParentItemUseCase reubica un activo padre de forma transaccional con
// bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback. La reubicación
// cascada a los hijos asignados por derivación: no se escribe ninguna fila
// por hijo, su ubicación efectiva es siempre la del padre.
type MoveParentItemUseCase struct {
	txRunner     TxRunner
	parentRepo   repository.ParentItemRepository
	locationRepo repository.LocationRepository
}

// NewMoveParentItemUseCase construye el caso de uso.
func NewMoveParentItemUseCase(
	txRunner TxRunner,
	parentRepo repository.ParentItemRepository,
	locationRepo repository.LocationRepository,
) *MoveParentItemUseCase {
	return &MoveParentItemUseCase{
		txRunner:     txRunner,
		parentRepo:   parentRepo,
		locationRepo: locationRepo,
	}
}

// MoveInputDTO entrada para mover un activo padre.
type MoveInputDTO struct {
	ParentItemID string
	ToLocationID string
	ActorID      string // usuario ya autenticado por la capa API
	Notes        string
}

// Move valida precondiciones fuera de la transacción y ejecuta la mutación
// dentro de una: bloquea la fila del padre, actualiza current_location
// guardado por versión, escribe exactamente una fila de MoveHistory y
// enumera el conjunto de cascada con la misma vista consistente.
//
// Un movimiento a la misma ubicación actual se registra igual: la intención
// del caller fue un movimiento explícito y debe quedar auditado.
func (uc *MoveParentItemUseCase) Move(ctx context.Context, input MoveInputDTO) (*dto.MoveResultResponse, error) {
	if input.ParentItemID == "" || input.ToLocationID == "" || input.ActorID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Precondición 1: el activo padre existe.
	parent, err := uc.parentRepo.GetByID(input.ParentItemID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}

	// Precondición 2: la ubicación destino existe.
	destination, err := uc.locationRepo.GetByID(input.ToLocationID)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, domain.ErrInvalidDestination
	}

	var result *dto.MoveResultResponse

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner lo hace).
	err = uc.txRunner.RunMove(ctx, func(
		parentRepo repository.ParentItemRepository,
		childRepo repository.ChildItemRepository,
		moveRepo repository.MoveHistoryRepository,
	) error {
		// Relee y bloquea la fila del padre: movimientos concurrentes sobre
		// el mismo ítem se serializan aquí.
		locked, err := parentRepo.GetForUpdate(input.ParentItemID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		from := locked.CurrentLocationID
		now := time.Now()

		// Actualiza la ubicación con guardia de versión; 0 filas = la lectura
		// quedó obsoleta frente a otro commit.
		affected, err := parentRepo.UpdateLocation(input.ParentItemID, input.ToLocationID, locked.Version, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrConflict
		}

		// Exactamente una fila de historial por reubicación.
		move := &entity.MoveHistory{
			ParentItemID:   input.ParentItemID,
			FromLocationID: from,
			ToLocationID:   input.ToLocationID,
			MovedAt:        now,
			MovedBy:        input.ActorID,
			Notes:          input.Notes,
		}
		if err := moveRepo.Create(move); err != nil {
			return err
		}

		// Conjunto de cascada: hijos asignados vistos dentro de la misma tx.
		children, err := childRepo.ListByParent(input.ParentItemID)
		if err != nil {
			return err
		}
		childIDs := make([]string, 0, len(children))
		for _, c := range children {
			childIDs = append(childIDs, c.ID)
		}

		result = &dto.MoveResultResponse{
			ParentItemID:     input.ParentItemID,
			FromLocationID:   from,
			ToLocationID:     input.ToLocationID,
			MovedAt:          now,
			MovedBy:          input.ActorID,
			Notes:            input.Notes,
			CascadedChildIDs: childIDs,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
