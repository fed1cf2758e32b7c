package entity

import "time"

// LocationType representa un tipo de ubicación (bodega, estantería, vehículo, etc.).
type LocationType struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
