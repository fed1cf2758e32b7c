package dto

import "time"

// MoveHistoryQuery filtros para GET /api/history/moves.
// El rango de fechas es inclusivo en ambos extremos; location_id coincide
// con origen o destino.
type MoveHistoryQuery struct {
	ParentItemID string     `query:"parent_item_id"`
	LocationID   string     `query:"location_id"`
	ItemTypeID   string     `query:"item_type_id"`
	From         *time.Time `query:"from"`
	To           *time.Time `query:"to"`
	Descending   bool       `query:"descending"`
	Limit        int        `query:"limit"`
	Offset       int        `query:"offset"`
}

// MoveHistoryResponse una fila del historial de movimientos.
type MoveHistoryResponse struct {
	ID             string    `json:"id"`
	ParentItemID   string    `json:"parent_item_id"`
	FromLocationID *string   `json:"from_location_id,omitempty"`
	ToLocationID   string    `json:"to_location_id"`
	MovedAt        time.Time `json:"moved_at"`
	MovedBy        string    `json:"moved_by"`
	Notes          string    `json:"notes,omitempty"`
}

// MoveHistoryListResponse listado de historial de movimientos.
type MoveHistoryListResponse struct {
	Items []MoveHistoryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// AssignmentHistoryQuery filtros para GET /api/history/assignments.
type AssignmentHistoryQuery struct {
	ChildItemID  string `query:"child_item_id"`
	ParentItemID string `query:"parent_item_id"`
	Limit        int    `query:"limit"`
	Offset       int    `query:"offset"`
}

// AssignmentHistoryResponse una fila del historial de asignaciones.
type AssignmentHistoryResponse struct {
	ID               string    `json:"id"`
	ChildItemID      string    `json:"child_item_id"`
	PreviousParentID *string   `json:"previous_parent_id,omitempty"`
	NewParentID      *string   `json:"new_parent_id,omitempty"`
	ChangedAt        time.Time `json:"changed_at"`
	ChangedBy        string    `json:"changed_by"`
}

// AssignmentHistoryListResponse listado de historial de asignaciones.
type AssignmentHistoryListResponse struct {
	Items []AssignmentHistoryResponse `json:"items"`
	Page  PageResponse                `json:"page"`
}

// ChildLocationResponse ubicación efectiva derivada de un activo hijo en un
// instante dado (su padre asignado en ese momento y el destino del último
// movimiento del padre). Campos nil = sin asignar / sin ubicar.
type ChildLocationResponse struct {
	ChildItemID  string    `json:"child_item_id"`
	ParentItemID *string   `json:"parent_item_id,omitempty"`
	LocationID   *string   `json:"location_id,omitempty"`
	At           time.Time `json:"at"`
}
