package dto

import "time"

// CreateItemTypeRequest body para POST /api/item-types.
type CreateItemTypeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Category string `json:"category" validate:"required,oneof=parent child"`
}

// UpdateItemTypeRequest body para PUT /api/item-types/{id}. La categoría es inmutable.
type UpdateItemTypeRequest struct {
	Name *string `json:"name,omitempty"`
}

// ItemTypeResponse salida de un tipo de activo.
type ItemTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemTypeListResponse listado paginado de tipos de activo.
type ItemTypeListResponse struct {
	Items []ItemTypeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateParentItemRequest body para POST /api/items. Los ítems nacen sin
// ubicar: la primera colocación se hace con el endpoint de movimiento.
type CreateParentItemRequest struct {
	SKU        string `json:"sku" validate:"required,min=1,max=100"`
	ItemTypeID string `json:"item_type_id" validate:"required,uuid"`
}

// UpdateParentItemRequest body para PUT /api/items/{id}.
type UpdateParentItemRequest struct {
	SKU        *string `json:"sku,omitempty"`
	ItemTypeID *string `json:"item_type_id,omitempty"`
}

// ParentItemResponse salida de un activo padre.
type ParentItemResponse struct {
	ID                string    `json:"id"`
	SKU               string    `json:"sku"`
	ItemTypeID        string    `json:"item_type_id"`
	CurrentLocationID *string   `json:"current_location_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	CreatedBy         string    `json:"created_by"`
}

// ParentItemListResponse listado paginado de activos padre.
type ParentItemListResponse struct {
	Items []ParentItemResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CreateChildItemRequest body para POST /api/children. Los hijos nacen sin
// asignar: la asignación se hace con el endpoint de asignación.
type CreateChildItemRequest struct {
	SKU        string `json:"sku" validate:"required,min=1,max=100"`
	ItemTypeID string `json:"item_type_id" validate:"required,uuid"`
}

// UpdateChildItemRequest body para PUT /api/children/{id}.
type UpdateChildItemRequest struct {
	SKU        *string `json:"sku,omitempty"`
	ItemTypeID *string `json:"item_type_id,omitempty"`
}

// ChildItemResponse salida de un activo hijo.
type ChildItemResponse struct {
	ID           string    `json:"id"`
	SKU          string    `json:"sku"`
	ItemTypeID   string    `json:"item_type_id"`
	ParentItemID *string   `json:"parent_item_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatedBy    string    `json:"created_by"`
}

// ChildItemListResponse listado paginado de activos hijo.
type ChildItemListResponse struct {
	Items []ChildItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
