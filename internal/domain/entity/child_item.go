package entity

import "time"

// ChildItem representa un activo hijo. No tiene ubicación propia: su ubicación
// efectiva es siempre la ubicación actual del padre asignado.
//
// ParentItemID nil significa sin asignar. Al vivir la referencia en el hijo,
// es estructuralmente imposible tener dos padres a la vez; lo que protege el
// gestor de asignaciones es que la transición sea atómica y quede registrada.
type ChildItem struct {
	ID           string
	SKU          string
	ItemTypeID   string
	ParentItemID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatedBy    string // UserID
}
