package entity

import (
	"encoding/json"
	"time"
)

// Location representa una ubicación física donde pueden estar activos padre.
// Metadata es JSON libre (dirección, coordenadas, responsable, etc.).
// Solo es eliminable cuando ningún ParentItem la referencia como ubicación actual.
type Location struct {
	ID             string
	Name           string
	LocationTypeID string
	Metadata       json.RawMessage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
