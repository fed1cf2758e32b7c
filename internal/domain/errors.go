package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidDestination = errors.New("ubicación destino inexistente")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto por modificación concurrente") // seguro reintentar con lectura fresca
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// DependencyError indica una eliminación bloqueada por dependientes existentes.
// Lleva el conteo y los nombres bloqueantes para que la capa HTTP pueda
// construir un mensaje accionable.
type DependencyError struct {
	Resource string   // qué se intentó eliminar: location, location_type, item_type
	Count    int      // cuántos dependientes lo bloquean
	Blockers []string // nombres/IDs de los dependientes (vacío si solo hay conteo)
}

// Error implementa error.
func (e *DependencyError) Error() string {
	if len(e.Blockers) > 0 {
		return fmt.Sprintf("no se puede eliminar %s: %d dependiente(s) [%s]",
			e.Resource, e.Count, strings.Join(e.Blockers, ", "))
	}
	return fmt.Sprintf("no se puede eliminar %s: %d dependiente(s)", e.Resource, e.Count)
}

// AsDependencyError extrae un *DependencyError de la cadena de errores.
func AsDependencyError(err error) (*DependencyError, bool) {
	var depErr *DependencyError
	if errors.As(err, &depErr) {
		return depErr, true
	}
	return nil, false
}
