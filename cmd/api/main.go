package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Activos-api/docs"
	"github.com/jhoicas/Activos-api/internal/application/assignment"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/history"
	"github.com/jhoicas/Activos-api/internal/application/movement"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/application/validation"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Activos-api/internal/interfaces/http"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

// @title Activos API
// @version 1.0
// @description API de gestión de activos: ubicaciones, activos padre/hijo, movimientos y asignaciones con historial.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	locationTypeRepo := postgres.NewLocationTypeRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	itemTypeRepo := postgres.NewItemTypeRepository(pool)
	parentItemRepo := postgres.NewParentItemRepository(pool)
	childItemRepo := postgres.NewChildItemRepository(pool)
	moveHistoryRepo := postgres.NewMoveHistoryRepository(pool)
	assignmentHistoryRepo := postgres.NewAssignmentHistoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	validator := validation.NewConstraintValidator(
		parentItemRepo, childItemRepo, locationRepo, locationTypeRepo, itemTypeRepo,
	)

	locationTypeUC := usecase.NewLocationTypeUseCase(locationTypeRepo, validator)
	locationUC := usecase.NewLocationUseCase(locationRepo, locationTypeRepo, validator)
	itemTypeUC := usecase.NewItemTypeUseCase(itemTypeRepo, validator)
	parentItemUC := usecase.NewParentItemUseCase(parentItemRepo, childItemRepo, itemTypeRepo)
	childItemUC := usecase.NewChildItemUseCase(childItemRepo, itemTypeRepo)

	moveUC := movement.NewMoveParentItemUseCase(txRunner, parentItemRepo, locationRepo)
	assignUC := assignment.NewAssignChildUseCase(txRunner, childItemRepo, parentItemRepo)
	historyUC := history.NewHistoryQueryUseCase(moveHistoryRepo, assignmentHistoryRepo, childItemRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Activos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		LocationTypeUC: locationTypeUC,
		LocationUC:     locationUC,
		ItemTypeUC:     itemTypeUC,
		ParentItemUC:   parentItemUC,
		ChildItemUC:    childItemUC,
		MoveUC:         moveUC,
		AssignUC:       assignUC,
		HistoryUC:      historyUC,
		Validator:      validator,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
