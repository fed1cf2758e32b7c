package entity

import "time"

// ParentItem representa un activo padre: unidad móvil con ubicación propia
// que puede portar activos hijo. CurrentLocationID nil significa sin ubicar
// (aún sin primer movimiento).
//
// CurrentLocationID solo lo muta el motor de movimientos; Version es el
// contador de concurrencia optimista que protege esa mutación.
type ParentItem struct {
	ID                string
	SKU               string // código único asignado por humanos
	ItemTypeID        string
	CurrentLocationID *string
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CreatedBy         string // UserID
}
