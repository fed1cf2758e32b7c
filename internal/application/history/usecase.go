package history

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// HistoryQueryUseCase acceso de solo lectura, cronológico y filtrable sobre
// los historiales de movimientos y asignaciones. Nunca muta estado.
type HistoryQueryUseCase struct {
	moveRepo   repository.MoveHistoryRepository
	assignRepo repository.AssignmentHistoryRepository
	childRepo  repository.ChildItemRepository
}

// NewHistoryQueryUseCase construye el servicio de consultas.
func NewHistoryQueryUseCase(
	moveRepo repository.MoveHistoryRepository,
	assignRepo repository.AssignmentHistoryRepository,
	childRepo repository.ChildItemRepository,
) *HistoryQueryUseCase {
	return &HistoryQueryUseCase{
		moveRepo:   moveRepo,
		assignRepo: assignRepo,
		childRepo:  childRepo,
	}
}

// GetMoveHistory consulta el historial de movimientos. Orden por moved_at
// ascendente salvo que el filtro pida descendente; rango de fechas inclusivo.
func (uc *HistoryQueryUseCase) GetMoveHistory(query dto.MoveHistoryQuery) (*dto.MoveHistoryListResponse, error) {
	limit, offset := normalizePage(query.Limit, query.Offset)
	list, err := uc.moveRepo.List(repository.MoveHistoryFilter{
		ParentItemID: query.ParentItemID,
		LocationID:   query.LocationID,
		ItemTypeID:   query.ItemTypeID,
		From:         query.From,
		To:           query.To,
		Descending:   query.Descending,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MoveHistoryResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMoveResponse(m))
	}
	return &dto.MoveHistoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetAssignmentHistory consulta el historial de asignaciones, ordenado por
// changed_at ascendente.
func (uc *HistoryQueryUseCase) GetAssignmentHistory(query dto.AssignmentHistoryQuery) (*dto.AssignmentHistoryListResponse, error) {
	limit, offset := normalizePage(query.Limit, query.Offset)
	list, err := uc.assignRepo.List(repository.AssignmentHistoryFilter{
		ChildItemID:  query.ChildItemID,
		ParentItemID: query.ParentItemID,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssignmentHistoryResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AssignmentHistoryResponse{
			ID:               a.ID,
			ChildItemID:      a.ChildItemID,
			PreviousParentID: a.PreviousParentID,
			NewParentID:      a.NewParentID,
			ChangedAt:        a.ChangedAt,
			ChangedBy:        a.ChangedBy,
		})
	}
	return &dto.AssignmentHistoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ResolveChildLocation deriva la ubicación efectiva de un activo hijo en un
// instante dado (at nil = ahora): el padre asignado en ese momento según el
// historial de asignaciones, y el destino del último movimiento de ese padre
// hasta ese momento. El contrato de auditoría "¿dónde estaba C en T?" se
// responde siempre por esta unión, nunca con filas propias del hijo.
func (uc *HistoryQueryUseCase) ResolveChildLocation(childItemID string, at *time.Time) (*dto.ChildLocationResponse, error) {
	child, err := uc.childRepo.GetByID(childItemID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, domain.ErrNotFound
	}

	instant := time.Now()
	parentID := child.ParentItemID
	if at != nil {
		instant = *at
		// En un instante pasado el padre vigente sale del historial, no del
		// estado actual del hijo.
		change, err := uc.assignRepo.LastForChildAt(childItemID, instant)
		if err != nil {
			return nil, err
		}
		if change == nil {
			parentID = nil // aún sin asignaciones en ese momento
		} else {
			parentID = change.NewParentID
		}
	}

	resp := &dto.ChildLocationResponse{
		ChildItemID:  childItemID,
		ParentItemID: parentID,
		At:           instant,
	}
	if parentID == nil {
		return resp, nil // sin padre = sin ubicación efectiva
	}
	move, err := uc.moveRepo.LastForParentAt(*parentID, instant)
	if err != nil {
		return nil, err
	}
	if move != nil {
		resp.LocationID = &move.ToLocationID
	}
	return resp, nil
}

func toMoveResponse(m *entity.MoveHistory) dto.MoveHistoryResponse {
	return dto.MoveHistoryResponse{
		ID:             m.ID,
		ParentItemID:   m.ParentItemID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		MovedAt:        m.MovedAt,
		MovedBy:        m.MovedBy,
		Notes:          m.Notes,
	}
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
