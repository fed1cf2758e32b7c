package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/history"
)

// HistoryHandler consultas de solo lectura sobre los historiales (protegido).
type HistoryHandler struct {
	uc *history.HistoryQueryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *history.HistoryQueryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Moves godoc
// @Summary      Historial de movimientos
// @Description  Filtrable por activo, ubicación (origen o destino), tipo de
//
//	activo y rango de fechas inclusivo. Orden cronológico ascendente salvo
//	descending=true.
//
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        parent_item_id  query  string  false  "Filtrar por activo padre"
// @Param        location_id     query  string  false  "Filtrar por ubicación (origen o destino)"
// @Param        item_type_id    query  string  false  "Filtrar por tipo de activo"
// @Param        from            query  string  false  "Desde (RFC3339, inclusivo)"
// @Param        to              query  string  false  "Hasta (RFC3339, inclusivo)"
// @Param        descending      query  bool    false  "Orden descendente"
// @Param        limit           query  int     false  "Límite"   default(50)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MoveHistoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/history/moves [get]
func (h *HistoryHandler) Moves(c *fiber.Ctx) error {
	query := dto.MoveHistoryQuery{
		ParentItemID: c.Query("parent_item_id"),
		LocationID:   c.Query("location_id"),
		ItemTypeID:   c.Query("item_type_id"),
		Descending:   c.QueryBool("descending", false),
		Limit:        c.QueryInt("limit", 0),
		Offset:       c.QueryInt("offset", 0),
	}
	var err error
	if query.From, err = parseTimeQuery(c, "from"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
	}
	if query.To, err = parseTimeQuery(c, "to"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
	}
	out, err := h.uc.GetMoveHistory(query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Assignments godoc
// @Summary      Historial de asignaciones
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        child_item_id   query  string  false  "Filtrar por activo hijo"
// @Param        parent_item_id  query  string  false  "Filtrar por padre (anterior o nuevo)"
// @Param        limit           query  int     false  "Límite"   default(50)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.AssignmentHistoryListResponse
// @Router       /api/history/assignments [get]
func (h *HistoryHandler) Assignments(c *fiber.Ctx) error {
	out, err := h.uc.GetAssignmentHistory(dto.AssignmentHistoryQuery{
		ChildItemID:  c.Query("child_item_id"),
		ParentItemID: c.Query("parent_item_id"),
		Limit:        c.QueryInt("limit", 0),
		Offset:       c.QueryInt("offset", 0),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
