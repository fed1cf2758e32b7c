package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/movement"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// ParentItemHandler maneja las peticiones HTTP para activos padre (protegido),
// incluido el endpoint de movimiento.
type ParentItemHandler struct {
	uc     *usecase.ParentItemUseCase
	moveUC *movement.MoveParentItemUseCase
}

// NewParentItemHandler construye el handler.
func NewParentItemHandler(uc *usecase.ParentItemUseCase, moveUC *movement.MoveParentItemUseCase) *ParentItemHandler {
	return &ParentItemHandler{uc: uc, moveUC: moveUC}
}

// Create godoc
// @Summary      Crear activo padre (nace sin ubicar)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateParentItemRequest  true  "sku, item_type_id"
// @Success      201   {object}  dto.ParentItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ParentItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateParentItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SKU == "" || in.ItemTypeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku e item_type_id son requeridos"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener activo padre por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {object}  dto.ParentItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ParentItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar activo padre (no cambia su ubicación)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.UpdateParentItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ParentItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ParentItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateParentItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar activos padre
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        item_type_id  query  string  false  "Filtrar por tipo"
// @Param        location_id   query  string  false  "Filtrar por ubicación actual"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200           {object}  dto.ParentItemListResponse
// @Router       /api/items [get]
func (h *ParentItemHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("item_type_id"), c.Query("location_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Mover activo padre a otra ubicación
// @Description  Reubica el activo de forma atómica. Los hijos asignados viajan
//
//	con él por derivación; la respuesta enumera el conjunto de cascada.
//
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.MoveParentItemRequest  true  "to_location_id, notes"
// @Success      200   {object}  dto.MoveResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/move [post]
func (h *ParentItemHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveParentItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ToLocationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to_location_id es requerido"})
	}
	out, err := h.moveUC.Move(c.Context(), movement.MoveInputDTO{
		ParentItemID: c.Params("id"),
		ToLocationID: in.ToLocationID,
		ActorID:      GetUserID(c),
		Notes:        in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar activo padre (bloqueado mientras tenga hijos asignados)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ParentItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
