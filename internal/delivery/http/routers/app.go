package routers

import (
	"portfolio/internal/delivery/http/handlers"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/usecases"
	consts "portfolio/pkg/constants"
	apperrors "portfolio/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Deps struct {
	Repos      *repositories.Registry
	Media      usecases.MediaService
	UploadsDir string // local storage root; empty when media lives in S3
	BodyLimit  int
	AccessLog  bool
	Logger     *zap.Logger
}

// NewApp builds the fiber app with every API route mounted under /api.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    d.BodyLimit,
		ErrorHandler: apperrors.FiberErrorHandler,
	})

	// Middleware
	if d.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group(consts.APIPrefix)
	api.Get("/", handlers.Root)
	api.Get("/health", handlers.Health)
	api.Get("/categories", handlers.Categories)

	SetupContentRoutes(api, d.Repos, d.Logger)
	SetupMediaRoutes(api, d.Media)
	SetupUploadRoutes(app, api, d.Media, d.UploadsDir)

	return app
}
