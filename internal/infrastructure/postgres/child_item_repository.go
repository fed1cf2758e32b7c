package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.ChildItemRepository = (*ChildItemRepo)(nil)

// ChildItemRepo implementación sobre PostgreSQL (usable con pool o tx).
type ChildItemRepo struct {
	q Querier
}

// NewChildItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChildItemRepository(q Querier) *ChildItemRepo {
	return &ChildItemRepo{q: q}
}

const childItemColumns = `id, sku, item_type_id, parent_item_id, created_at, updated_at, created_by`

// Create persiste un activo hijo. SKU duplicado sale como domain.ErrDuplicate.
func (r *ChildItemRepo) Create(item *entity.ChildItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO child_items (id, sku, item_type_id, parent_item_id, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.ItemTypeID, item.ParentItemID,
		item.CreatedAt, item.UpdatedAt, item.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert child item: %w", err)
	}
	return nil
}

// GetByID obtiene un activo hijo por ID.
func (r *ChildItemRepo) GetByID(id string) (*entity.ChildItem, error) {
	query := `SELECT ` + childItemColumns + ` FROM child_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un activo hijo por SKU.
func (r *ChildItemRepo) GetBySKU(sku string) (*entity.ChildItem, error) {
	query := `SELECT ` + childItemColumns + ` FROM child_items WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// GetForUpdate obtiene el activo hijo y bloquea la fila (SELECT FOR UPDATE).
// Serializa asignaciones concurrentes sobre el mismo hijo, y ordena una
// reasignación frente a un movimiento del padre en curso.
func (r *ChildItemRepo) GetForUpdate(id string) (*entity.ChildItem, error) {
	query := `SELECT ` + childItemColumns + ` FROM child_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// UpdateParent cambia la referencia al padre (nil = desasignar).
func (r *ChildItemRepo) UpdateParent(id string, parentItemID *string, updatedAt time.Time) error {
	query := `
		UPDATE child_items SET parent_item_id = $2, updated_at = $3
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, parentItemID, updatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update child item parent: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update actualiza campos mutables fuera del gestor de asignaciones (SKU, tipo).
func (r *ChildItemRepo) Update(item *entity.ChildItem) error {
	query := `
		UPDATE child_items SET sku = $2, item_type_id = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.ItemTypeID, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update child item: %w", err)
	}
	return nil
}

// List lista activos hijo, opcionalmente filtrados por tipo.
func (r *ChildItemRepo) List(itemTypeID string, limit, offset int) ([]*entity.ChildItem, error) {
	query := `SELECT ` + childItemColumns + ` FROM child_items`
	args := []any{}
	pos := 1
	if itemTypeID != "" {
		query += fmt.Sprintf(" WHERE item_type_id = $%d", pos)
		args = append(args, itemTypeID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list child items: %w", err)
	}
	defer rows.Close()
	return scanChildItems(rows)
}

// ListByParent devuelve los hijos actualmente asignados a un padre
// (el conjunto de cascada del motor de movimientos).
func (r *ChildItemRepo) ListByParent(parentItemID string) ([]*entity.ChildItem, error) {
	query := `SELECT ` + childItemColumns + ` FROM child_items WHERE parent_item_id = $1 ORDER BY sku`
	rows, err := r.q.Query(context.Background(), query, parentItemID)
	if err != nil {
		return nil, fmt.Errorf("list child items by parent: %w", err)
	}
	defer rows.Close()
	return scanChildItems(rows)
}

// CountByItemType cuenta los activos hijo de un tipo.
func (r *ChildItemRepo) CountByItemType(itemTypeID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM child_items WHERE item_type_id = $1`, itemTypeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count child items by type: %w", err)
	}
	return count, nil
}

// Delete elimina un activo hijo por ID (el caller valida antes que no esté asignado).
func (r *ChildItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM child_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete child item: %w", err)
	}
	return nil
}

func (r *ChildItemRepo) scanOne(row pgx.Row) (*entity.ChildItem, error) {
	var it entity.ChildItem
	err := row.Scan(&it.ID, &it.SKU, &it.ItemTypeID, &it.ParentItemID,
		&it.CreatedAt, &it.UpdatedAt, &it.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get child item: %w", err)
	}
	return &it, nil
}

func scanChildItems(rows pgx.Rows) ([]*entity.ChildItem, error) {
	var list []*entity.ChildItem
	for rows.Next() {
		var it entity.ChildItem
		if err := rows.Scan(&it.ID, &it.SKU, &it.ItemTypeID, &it.ParentItemID,
			&it.CreatedAt, &it.UpdatedAt, &it.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan child item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
