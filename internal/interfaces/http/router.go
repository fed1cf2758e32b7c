package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/assignment"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/history"
	"github.com/jhoicas/Activos-api/internal/application/movement"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/application/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LocationTypeUC *usecase.LocationTypeUseCase
	LocationUC     *usecase.LocationUseCase
	ItemTypeUC     *usecase.ItemTypeUseCase
	ParentItemUC   *usecase.ParentItemUseCase
	ChildItemUC    *usecase.ChildItemUseCase
	MoveUC         *movement.MoveParentItemUseCase
	AssignUC       *assignment.AssignChildUseCase
	HistoryUC      *history.HistoryQueryUseCase
	Validator      *validation.ConstraintValidator
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// RBAC: lecturas para cualquier usuario autenticado; mutaciones para admin y
// operador; eliminaciones solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	writer := RequireRole("admin", "operador")
	adminOnly := RequireRole("admin")

	// Location types (protegido)
	locationTypes := protected.Group("/location-types")
	locationTypeHandler := NewLocationTypeHandler(deps.LocationTypeUC, deps.Validator)
	locationTypes.Post("/", writer, locationTypeHandler.Create)
	locationTypes.Get("/", locationTypeHandler.List)
	locationTypes.Get("/:id", locationTypeHandler.GetByID)
	locationTypes.Put("/:id", writer, locationTypeHandler.Update)
	locationTypes.Get("/:id/can-delete", locationTypeHandler.CanDelete)
	locationTypes.Delete("/:id", adminOnly, locationTypeHandler.Delete)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC, deps.Validator)
	locations.Post("/", writer, locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", writer, locationHandler.Update)
	locations.Get("/:id/can-delete", locationHandler.CanDelete)
	locations.Delete("/:id", adminOnly, locationHandler.Delete)

	// Item types (protegido)
	itemTypes := protected.Group("/item-types")
	itemTypeHandler := NewItemTypeHandler(deps.ItemTypeUC, deps.Validator)
	itemTypes.Post("/", writer, itemTypeHandler.Create)
	itemTypes.Get("/", itemTypeHandler.List)
	itemTypes.Get("/:id", itemTypeHandler.GetByID)
	itemTypes.Put("/:id", writer, itemTypeHandler.Update)
	itemTypes.Get("/:id/can-delete", itemTypeHandler.CanDelete)
	itemTypes.Delete("/:id", adminOnly, itemTypeHandler.Delete)

	// Parent items (protegido) + movimiento
	items := protected.Group("/items")
	parentItemHandler := NewParentItemHandler(deps.ParentItemUC, deps.MoveUC)
	items.Post("/", writer, parentItemHandler.Create)
	items.Get("/", parentItemHandler.List)
	items.Get("/:id", parentItemHandler.GetByID)
	items.Put("/:id", writer, parentItemHandler.Update)
	items.Post("/:id/move", writer, parentItemHandler.Move)
	items.Delete("/:id", adminOnly, parentItemHandler.Delete)

	// Child items (protegido) + asignación y ubicación derivada
	children := protected.Group("/children")
	childItemHandler := NewChildItemHandler(deps.ChildItemUC, deps.AssignUC, deps.HistoryUC)
	children.Post("/", writer, childItemHandler.Create)
	children.Get("/", childItemHandler.List)
	children.Get("/:id", childItemHandler.GetByID)
	children.Put("/:id", writer, childItemHandler.Update)
	children.Post("/:id/assign", writer, childItemHandler.Assign)
	children.Get("/:id/location", childItemHandler.Location)
	children.Delete("/:id", adminOnly, childItemHandler.Delete)

	// History (protegido, solo lectura)
	historyGroup := protected.Group("/history")
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	historyGroup.Get("/moves", historyHandler.Moves)
	historyGroup.Get("/assignments", historyHandler.Assignments)
}
