package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/application/validation"
)

// LocationTypeHandler maneja las peticiones HTTP para tipos de ubicación (protegido).
type LocationTypeHandler struct {
	uc        *usecase.LocationTypeUseCase
	validator *validation.ConstraintValidator
}

// NewLocationTypeHandler construye el handler.
func NewLocationTypeHandler(uc *usecase.LocationTypeUseCase, validator *validation.ConstraintValidator) *LocationTypeHandler {
	return &LocationTypeHandler{uc: uc, validator: validator}
}

// Create godoc
// @Summary      Crear tipo de ubicación
// @Tags         location-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationTypeRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.LocationTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/location-types [post]
func (h *LocationTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de ubicación por ID
// @Tags         location-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.LocationTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/location-types/{id} [get]
func (h *LocationTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de ubicación no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de ubicación
// @Tags         location-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo"
// @Param        body  body  dto.UpdateLocationTypeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LocationTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/location-types/{id} [put]
func (h *LocationTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLocationTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de ubicación no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de ubicación
// @Tags         location-types
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.LocationTypeListResponse
// @Router       /api/location-types [get]
func (h *LocationTypeHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CanDelete godoc
// @Summary      Verificar si un tipo de ubicación es eliminable
// @Tags         location-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.DeleteCheckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/location-types/{id}/can-delete [get]
func (h *LocationTypeHandler) CanDelete(c *fiber.Ctx) error {
	out, err := h.validator.CanDeleteLocationType(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de ubicación
// @Tags         location-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/location-types/{id} [delete]
func (h *LocationTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams extrae limit/offset de la query con los defaults del listado.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
