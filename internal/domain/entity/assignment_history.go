package entity

import "time"

// AssignmentHistory registro inmutable de un cambio de asignación hijo→padre.
// PreviousParentID nil: el hijo estaba sin asignar. NewParentID nil: el cambio
// fue una desasignación. Una reasignación entre dos padres produce exactamente
// una fila que captura ambos. Append-only.
type AssignmentHistory struct {
	ID               string
	ChildItemID      string
	PreviousParentID *string
	NewParentID      *string
	ChangedAt        time.Time
	ChangedBy        string // UserID del actor
}
