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

var _ repository.LocationTypeRepository = (*LocationTypeRepo)(nil)

// LocationTypeRepo implementación del puerto LocationTypeRepository sobre PostgreSQL.
type LocationTypeRepo struct {
	q Querier
}

// NewLocationTypeRepository construye el adaptador de persistencia para tipos de ubicación.
func NewLocationTypeRepository(q Querier) *LocationTypeRepo {
	return &LocationTypeRepo{q: q}
}

// Create persiste un nuevo tipo de ubicación.
func (r *LocationTypeRepo) Create(locationType *entity.LocationType) error {
	if locationType.ID == "" {
		locationType.ID = uuid.New().String()
	}
	query := `
		INSERT INTO location_types (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		locationType.ID, locationType.Name, locationType.CreatedAt, locationType.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de ubicación por ID.
func (r *LocationTypeRepo) GetByID(id string) (*entity.LocationType, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM location_types WHERE id = $1`
	var t entity.LocationType
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location type: %w", err)
	}
	return &t, nil
}

// Update actualiza un tipo de ubicación existente.
func (r *LocationTypeRepo) Update(locationType *entity.LocationType) error {
	query := `
		UPDATE location_types SET name = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		locationType.ID, locationType.Name, locationType.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location type: %w", err)
	}
	return nil
}

// List lista tipos de ubicación con paginación.
func (r *LocationTypeRepo) List(limit, offset int) ([]*entity.LocationType, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM location_types ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list location types: %w", err)
	}
	defer rows.Close()
	var list []*entity.LocationType
	for rows.Next() {
		var t entity.LocationType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un tipo de ubicación por ID.
func (r *LocationTypeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM location_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location type: %w", err)
	}
	return nil
}
