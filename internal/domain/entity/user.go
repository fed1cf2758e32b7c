package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador" // puede mover y asignar activos
	RoleConsulta = "consulta" // solo lectura
)

// User representa un usuario del sistema (actor de movimientos y asignaciones).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, operador, consulta
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
