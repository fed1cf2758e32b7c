package dto

import (
	"encoding/json"
	"time"
)

// CreateLocationTypeRequest body para POST /api/location-types.
type CreateLocationTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateLocationTypeRequest body para PUT /api/location-types/{id}.
type UpdateLocationTypeRequest struct {
	Name *string `json:"name,omitempty"`
}

// LocationTypeResponse salida de un tipo de ubicación.
type LocationTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationTypeListResponse listado paginado de tipos de ubicación.
type LocationTypeListResponse struct {
	Items []LocationTypeResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	LocationTypeID string          `json:"location_type_id" validate:"required,uuid"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
}

// UpdateLocationRequest body para PUT /api/locations/{id}.
type UpdateLocationRequest struct {
	Name           *string         `json:"name,omitempty"`
	LocationTypeID *string         `json:"location_type_id,omitempty"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LocationTypeID string          `json:"location_type_id"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// LocationListResponse listado paginado de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// DeleteCheckResponse resultado de una verificación de eliminación.
// Cuando CanDelete es false, Reason explica el bloqueo y Blockers nombra
// los dependientes (si aplica) para un mensaje accionable.
type DeleteCheckResponse struct {
	CanDelete bool     `json:"can_delete"`
	Count     int      `json:"count,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	Blockers  []string `json:"blockers,omitempty"`
}
