package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssignmentHistoryRepository = (*AssignmentHistoryRepo)(nil)

// AssignmentHistoryRepo implementación sobre PostgreSQL (usable con pool o tx).
// Solo insert y select: las filas de historial son inmutables.
type AssignmentHistoryRepo struct {
	q Querier
}

// NewAssignmentHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentHistoryRepository(q Querier) *AssignmentHistoryRepo {
	return &AssignmentHistoryRepo{q: q}
}

// Create persiste un registro de cambio de asignación.
func (r *AssignmentHistoryRepo) Create(change *entity.AssignmentHistory) error {
	if change.ID == "" {
		change.ID = uuid.New().String()
	}
	query := `
		INSERT INTO assignment_history (id, child_item_id, previous_parent_id, new_parent_id, changed_at, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		change.ID, change.ChildItemID, change.PreviousParentID, change.NewParentID,
		change.ChangedAt, change.ChangedBy,
	)
	if err != nil {
		return fmt.Errorf("create assignment history: %w", err)
	}
	return nil
}

// List consulta el historial de asignaciones ordenado por changed_at ascendente.
// ParentItemID coincide con padre anterior o nuevo.
func (r *AssignmentHistoryRepo) List(filter repository.AssignmentHistoryFilter) ([]*entity.AssignmentHistory, error) {
	query := `
		SELECT id, child_item_id, previous_parent_id, new_parent_id, changed_at, changed_by
		FROM assignment_history WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ChildItemID != "" {
		query += fmt.Sprintf(" AND child_item_id = $%d", pos)
		args = append(args, filter.ChildItemID)
		pos++
	}
	if filter.ParentItemID != "" {
		query += fmt.Sprintf(" AND (previous_parent_id = $%d OR new_parent_id = $%d)", pos, pos)
		args = append(args, filter.ParentItemID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY changed_at ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignment history: %w", err)
	}
	defer rows.Close()
	var list []*entity.AssignmentHistory
	for rows.Next() {
		var a entity.AssignmentHistory
		if err := rows.Scan(&a.ID, &a.ChildItemID, &a.PreviousParentID, &a.NewParentID,
			&a.ChangedAt, &a.ChangedBy); err != nil {
			return nil, fmt.Errorf("scan assignment history: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// LastForChildAt devuelve el último cambio de asignación del hijo con
// changed_at <= at, o nil si el hijo nunca ha tenido cambios de asignación.
func (r *AssignmentHistoryRepo) LastForChildAt(childItemID string, at time.Time) (*entity.AssignmentHistory, error) {
	query := `
		SELECT id, child_item_id, previous_parent_id, new_parent_id, changed_at, changed_by
		FROM assignment_history
		WHERE child_item_id = $1 AND changed_at <= $2
		ORDER BY changed_at DESC LIMIT 1`
	var a entity.AssignmentHistory
	err := r.q.QueryRow(context.Background(), query, childItemID, at).Scan(
		&a.ID, &a.ChildItemID, &a.PreviousParentID, &a.NewParentID, &a.ChangedAt, &a.ChangedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last assignment for child: %w", err)
	}
	return &a, nil
}
