package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.ItemTypeRepository = (*ItemTypeRepo)(nil)

// ItemTypeRepo implementación del puerto ItemTypeRepository sobre PostgreSQL.
type ItemTypeRepo struct {
	q Querier
}

// NewItemTypeRepository construye el adaptador de persistencia para tipos de activo.
func NewItemTypeRepository(q Querier) *ItemTypeRepo {
	return &ItemTypeRepo{q: q}
}

// Create persiste un nuevo tipo de activo.
func (r *ItemTypeRepo) Create(itemType *entity.ItemType) error {
	if itemType.ID == "" {
		itemType.ID = uuid.New().String()
	}
	query := `
		INSERT INTO item_types (id, name, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		itemType.ID, itemType.Name, itemType.Category, itemType.CreatedAt, itemType.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de activo por ID.
func (r *ItemTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	query := `
		SELECT id, name, category, created_at, updated_at
		FROM item_types WHERE id = $1`
	var t entity.ItemType
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.Category, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item type: %w", err)
	}
	return &t, nil
}

// Update actualiza el nombre de un tipo de activo (la categoría es inmutable).
func (r *ItemTypeRepo) Update(itemType *entity.ItemType) error {
	query := `
		UPDATE item_types SET name = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		itemType.ID, itemType.Name, itemType.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item type: %w", err)
	}
	return nil
}

// List lista tipos de activo, opcionalmente filtrados por categoría.
func (r *ItemTypeRepo) List(category string, limit, offset int) ([]*entity.ItemType, error) {
	query := `
		SELECT id, name, category, created_at, updated_at
		FROM item_types`
	args := []any{}
	pos := 1
	if category != "" {
		query += fmt.Sprintf(" WHERE category = $%d", pos)
		args = append(args, category)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list item types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemType
	for rows.Next() {
		var t entity.ItemType
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un tipo de activo por ID. El caller debe haber consultado
// antes al validador de dependencias.
func (r *ItemTypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM item_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item type: %w", err)
	}
	return nil
}
