package dto

import "time"

// MoveParentItemRequest body para POST /api/items/{id}/move.
type MoveParentItemRequest struct {
	ToLocationID string `json:"to_location_id" validate:"required,uuid"`
	Notes        string `json:"notes,omitempty" validate:"max=500"`
}

// MoveResultResponse resultado de un movimiento: el registro de historial
// creado más el conjunto de cascada (hijos que viajaron con el padre, por
// derivación, sin escrituras propias).
type MoveResultResponse struct {
	ParentItemID     string    `json:"parent_item_id"`
	FromLocationID   *string   `json:"from_location_id,omitempty"`
	ToLocationID     string    `json:"to_location_id"`
	MovedAt          time.Time `json:"moved_at"`
	MovedBy          string    `json:"moved_by"`
	Notes            string    `json:"notes,omitempty"`
	CascadedChildIDs []string  `json:"cascaded_child_ids"`
}

// AssignChildRequest body para POST /api/children/{id}/assign.
// new_parent_id null desasigna.
type AssignChildRequest struct {
	NewParentID *string `json:"new_parent_id"`
}

// AssignmentResultResponse resultado de un cambio de asignación.
type AssignmentResultResponse struct {
	ChildItemID      string    `json:"child_item_id"`
	PreviousParentID *string   `json:"previous_parent_id,omitempty"`
	NewParentID      *string   `json:"new_parent_id,omitempty"`
	ChangedAt        time.Time `json:"changed_at"`
	ChangedBy        string    `json:"changed_by"`
}
