package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/application/validation"
)

// ItemTypeHandler maneja las peticiones HTTP para tipos de activo (protegido).
type ItemTypeHandler struct {
	uc        *usecase.ItemTypeUseCase
	validator *validation.ConstraintValidator
}

// NewItemTypeHandler construye el handler.
func NewItemTypeHandler(uc *usecase.ItemTypeUseCase, validator *validation.ConstraintValidator) *ItemTypeHandler {
	return &ItemTypeHandler{uc: uc, validator: validator}
}

// Create godoc
// @Summary      Crear tipo de activo
// @Tags         item-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemTypeRequest  true  "name, category (parent|child)"
// @Success      201   {object}  dto.ItemTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/item-types [post]
func (h *ItemTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de activo por ID
// @Tags         item-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.ItemTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/item-types/{id} [get]
func (h *ItemTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de activo no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de activo (la categoría es inmutable)
// @Tags         item-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo"
// @Param        body  body  dto.UpdateItemTypeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/item-types/{id} [put]
func (h *ItemTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de activo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de activo
// @Tags         item-types
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría (parent|child)"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200       {object}  dto.ItemTypeListResponse
// @Router       /api/item-types [get]
func (h *ItemTypeHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("category"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CanDelete godoc
// @Summary      Verificar si un tipo de activo es eliminable
// @Tags         item-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.DeleteCheckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/item-types/{id}/can-delete [get]
func (h *ItemTypeHandler) CanDelete(c *fiber.Ctx) error {
	out, err := h.validator.CanDeleteItemType(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de activo
// @Tags         item-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/item-types/{id} [delete]
func (h *ItemTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
