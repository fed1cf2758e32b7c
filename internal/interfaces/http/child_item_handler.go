package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/assignment"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/history"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// ChildItemHandler maneja las peticiones HTTP para activos hijo (protegido),
// incluidos asignación y resolución de ubicación derivada.
type ChildItemHandler struct {
	uc        *usecase.ChildItemUseCase
	assignUC  *assignment.AssignChildUseCase
	historyUC *history.HistoryQueryUseCase
}

// NewChildItemHandler construye el handler.
func NewChildItemHandler(
	uc *usecase.ChildItemUseCase,
	assignUC *assignment.AssignChildUseCase,
	historyUC *history.HistoryQueryUseCase,
) *ChildItemHandler {
	return &ChildItemHandler{uc: uc, assignUC: assignUC, historyUC: historyUC}
}

// Create godoc
// @Summary      Crear activo hijo (nace sin asignar)
// @Tags         children
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChildItemRequest  true  "sku, item_type_id"
// @Success      201   {object}  dto.ChildItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/children [post]
func (h *ChildItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChildItemRequest
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
// @Summary      Obtener activo hijo por ID
// @Tags         children
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {object}  dto.ChildItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/children/{id} [get]
func (h *ChildItemHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar activo hijo (no cambia su asignación)
// @Tags         children
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.UpdateChildItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ChildItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/children/{id} [put]
func (h *ChildItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateChildItemRequest
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
// @Summary      Listar activos hijo
// @Tags         children
// @Security     Bearer
// @Produce      json
// @Param        item_type_id  query  string  false  "Filtrar por tipo"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200           {object}  dto.ChildItemListResponse
// @Router       /api/children [get]
func (h *ChildItemHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("item_type_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar, reasignar o desasignar un activo hijo
// @Description  new_parent_id null desasigna. La transición es atómica y
//
//	produce exactamente una fila de historial de asignaciones.
//
// @Tags         children
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo hijo"
// @Param        body  body  dto.AssignChildRequest  true  "new_parent_id (null = desasignar)"
// @Success      200   {object}  dto.AssignmentResultResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/children/{id}/assign [post]
func (h *ChildItemHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignChildRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.assignUC.Assign(c.Context(), assignment.AssignInputDTO{
		ChildItemID: c.Params("id"),
		NewParentID: in.NewParentID,
		ActorID:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Location godoc
// @Summary      Ubicación efectiva de un activo hijo
// @Description  Deriva la ubicación del hijo a partir de su padre asignado y
//
//	del historial de movimientos del padre. Con ?at=RFC3339 responde la
//	ubicación en ese instante pasado.
//
// @Tags         children
// @Security     Bearer
// @Produce      json
// @Param        id  path   string  true   "ID del activo hijo"
// @Param        at  query  string  false  "Instante RFC3339 (vacío = ahora)"
// @Success      200  {object}  dto.ChildLocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/children/{id}/location [get]
func (h *ChildItemHandler) Location(c *fiber.Ctx) error {
	var at *time.Time
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "at debe ser RFC3339"})
		}
		at = &parsed
	}
	out, err := h.historyUC.ResolveChildLocation(c.Params("id"), at)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar activo hijo (bloqueado mientras esté asignado)
// @Tags         children
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/children/{id} [delete]
func (h *ChildItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
