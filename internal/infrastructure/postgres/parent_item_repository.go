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

var _ repository.ParentItemRepository = (*ParentItemRepo)(nil)

// ParentItemRepo implementación sobre PostgreSQL (usable con pool o tx).
type ParentItemRepo struct {
	q Querier
}

// NewParentItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewParentItemRepository(q Querier) *ParentItemRepo {
	return &ParentItemRepo{q: q}
}

const parentItemColumns = `id, sku, item_type_id, current_location_id, version, created_at, updated_at, created_by`

// Create persiste un activo padre. SKU duplicado sale como domain.ErrDuplicate.
func (r *ParentItemRepo) Create(item *entity.ParentItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO parent_items (id, sku, item_type_id, current_location_id, version, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.ItemTypeID, item.CurrentLocationID, item.Version,
		item.CreatedAt, item.UpdatedAt, item.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert parent item: %w", err)
	}
	return nil
}

// GetByID obtiene un activo padre por ID.
func (r *ParentItemRepo) GetByID(id string) (*entity.ParentItem, error) {
	query := `SELECT ` + parentItemColumns + ` FROM parent_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un activo padre por SKU.
func (r *ParentItemRepo) GetBySKU(sku string) (*entity.ParentItem, error) {
	query := `SELECT ` + parentItemColumns + ` FROM parent_items WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// GetForUpdate obtiene el activo padre y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido con un repositorio atado a transacción: serializa los
// movimientos concurrentes sobre el mismo ítem.
func (r *ParentItemRepo) GetForUpdate(id string) (*entity.ParentItem, error) {
	query := `SELECT ` + parentItemColumns + ` FROM parent_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// UpdateLocation mueve el ítem a la ubicación destino y avanza el contador de
// versión. Cero filas afectadas significa que la versión leída quedó obsoleta
// (el caller lo expone como domain.ErrConflict).
func (r *ParentItemRepo) UpdateLocation(id string, locationID string, version int, updatedAt time.Time) (int64, error) {
	query := `
		UPDATE parent_items
		SET current_location_id = $2, version = version + 1, updated_at = $3
		WHERE id = $1 AND version = $4`
	cmd, err := r.q.Exec(context.Background(), query, id, locationID, updatedAt, version)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrInvalidDestination
		}
		return 0, fmt.Errorf("update parent item location: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Update actualiza campos mutables fuera del motor de movimientos (SKU, tipo).
func (r *ParentItemRepo) Update(item *entity.ParentItem) error {
	query := `
		UPDATE parent_items SET sku = $2, item_type_id = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.ItemTypeID, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update parent item: %w", err)
	}
	return nil
}

// List lista activos padre, opcionalmente filtrados por tipo y/o ubicación actual.
func (r *ParentItemRepo) List(itemTypeID, locationID string, limit, offset int) ([]*entity.ParentItem, error) {
	query := `SELECT ` + parentItemColumns + ` FROM parent_items WHERE 1=1`
	args := []any{}
	pos := 1
	if itemTypeID != "" {
		query += fmt.Sprintf(" AND item_type_id = $%d", pos)
		args = append(args, itemTypeID)
		pos++
	}
	if locationID != "" {
		query += fmt.Sprintf(" AND current_location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parent items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ParentItem
	for rows.Next() {
		var it entity.ParentItem
		if err := rows.Scan(&it.ID, &it.SKU, &it.ItemTypeID, &it.CurrentLocationID,
			&it.Version, &it.CreatedAt, &it.UpdatedAt, &it.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan parent item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// CountByLocation cuenta los activos padre cuya ubicación actual es locationID.
func (r *ParentItemRepo) CountByLocation(locationID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM parent_items WHERE current_location_id = $1`, locationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count parent items by location: %w", err)
	}
	return count, nil
}

// CountByItemType cuenta los activos padre de un tipo.
func (r *ParentItemRepo) CountByItemType(itemTypeID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM parent_items WHERE item_type_id = $1`, itemTypeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count parent items by type: %w", err)
	}
	return count, nil
}

// Delete elimina un activo padre por ID (la historia de movimientos se
// conserva; el caller valida antes que no tenga hijos asignados).
func (r *ParentItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parent_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete parent item: %w", err)
	}
	return nil
}

func (r *ParentItemRepo) scanOne(row pgx.Row) (*entity.ParentItem, error) {
	var it entity.ParentItem
	err := row.Scan(&it.ID, &it.SKU, &it.ItemTypeID, &it.CurrentLocationID,
		&it.Version, &it.CreatedAt, &it.UpdatedAt, &it.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parent item: %w", err)
	}
	return &it, nil
}
