package entity

import "time"

// Categorías de tipo de activo (polimorfismo suave: enum, no herencia).
const (
	ItemCategoryParent = "parent" // activo padre: tiene ubicación propia y puede portar hijos
	ItemCategoryChild  = "child"  // activo hijo: su ubicación se deriva del padre asignado
)

// ItemType representa un tipo de activo (padre o hijo).
// La categoría se valida en la frontera: un ParentItem solo puede referenciar
// un tipo de categoría "parent" y un ChildItem uno de categoría "child".
type ItemType struct {
	ID        string
	Name      string
	Category  string // parent | child
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidCategory indica si la categoría es una de las soportadas.
func ValidCategory(category string) bool {
	return category == ItemCategoryParent || category == ItemCategoryChild
}
