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

var _ repository.MoveHistoryRepository = (*MoveHistoryRepo)(nil)

// MoveHistoryRepo implementación sobre PostgreSQL (usable con pool o tx).
// Solo insert y select: las filas de historial son inmutables.
type MoveHistoryRepo struct {
	q Querier
}

// NewMoveHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMoveHistoryRepository(q Querier) *MoveHistoryRepo {
	return &MoveHistoryRepo{q: q}
}

// Create persiste un registro de movimiento.
func (r *MoveHistoryRepo) Create(move *entity.MoveHistory) error {
	if move.ID == "" {
		move.ID = uuid.New().String()
	}
	query := `
		INSERT INTO move_history (id, parent_item_id, from_location_id, to_location_id, moved_at, moved_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	// notes es NOT NULL en el esquema: un movimiento sin notas guarda ''.
	_, err := r.q.Exec(context.Background(), query,
		move.ID, move.ParentItemID, move.FromLocationID, move.ToLocationID,
		move.MovedAt, move.MovedBy, move.Notes,
	)
	if err != nil {
		return fmt.Errorf("create move history: %w", err)
	}
	return nil
}

// List consulta el historial de movimientos con filtros opcionales.
// LocationID coincide con origen o destino; el rango de fechas es inclusivo.
// Para filtrar por tipo de activo se une con parent_items.
func (r *MoveHistoryRepo) List(filter repository.MoveHistoryFilter) ([]*entity.MoveHistory, error) {
	query := `
		SELECT m.id, m.parent_item_id, m.from_location_id, m.to_location_id, m.moved_at, m.moved_by, m.notes
		FROM move_history m`
	args := []any{}
	pos := 1
	if filter.ItemTypeID != "" {
		query += " JOIN parent_items p ON p.id = m.parent_item_id"
	}
	query += " WHERE 1=1"
	if filter.ParentItemID != "" {
		query += fmt.Sprintf(" AND m.parent_item_id = $%d", pos)
		args = append(args, filter.ParentItemID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND (m.from_location_id = $%d OR m.to_location_id = $%d)", pos, pos)
		args = append(args, filter.LocationID)
		pos++
	}
	if filter.ItemTypeID != "" {
		query += fmt.Sprintf(" AND p.item_type_id = $%d", pos)
		args = append(args, filter.ItemTypeID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND m.moved_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND m.moved_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	order := "ASC"
	if filter.Descending {
		order = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY m.moved_at %s LIMIT $%d OFFSET $%d", order, pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list move history: %w", err)
	}
	defer rows.Close()
	var list []*entity.MoveHistory
	for rows.Next() {
		m, err := scanMove(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// LastForParentAt devuelve el último movimiento del padre con moved_at <= at,
// o nil si el padre no se había movido aún. Base de la resolución de
// ubicación efectiva de los hijos en un instante dado.
func (r *MoveHistoryRepo) LastForParentAt(parentItemID string, at time.Time) (*entity.MoveHistory, error) {
	query := `
		SELECT id, parent_item_id, from_location_id, to_location_id, moved_at, moved_by, notes
		FROM move_history
		WHERE parent_item_id = $1 AND moved_at <= $2
		ORDER BY moved_at DESC LIMIT 1`
	row := r.q.QueryRow(context.Background(), query, parentItemID, at)
	m, err := scanMove(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func scanMove(row pgx.Row) (*entity.MoveHistory, error) {
	var m entity.MoveHistory
	err := row.Scan(&m.ID, &m.ParentItemID, &m.FromLocationID, &m.ToLocationID,
		&m.MovedAt, &m.MovedBy, &m.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan move history: %w", err)
	}
	return &m, nil
}
