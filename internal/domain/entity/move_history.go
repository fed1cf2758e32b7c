package entity

import "time"

// MoveHistory registro inmutable de una reubicación de un activo padre.
// FromLocationID nil indica la primera colocación. Append-only: ninguna capa
// expone update ni delete sobre estas filas.
//
// Los hijos asignados no generan filas propias: su movimiento se deriva
// siempre de la historia del padre (evita explosión O(n) en cascadas grandes
// sin perder trazabilidad).
type MoveHistory struct {
	ID             string
	ParentItemID   string
	FromLocationID *string
	ToLocationID   string
	MovedAt        time.Time
	MovedBy        string // UserID del actor
	Notes          string
}
