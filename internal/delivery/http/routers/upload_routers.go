package routers

import (
	"portfolio/internal/delivery/http/handlers"
	"portfolio/internal/usecases"
	consts "portfolio/pkg/constants"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadRoutes mounts the multipart upload endpoints and, for local
// storage, serves the stored files under /api/uploads.
func SetupUploadRoutes(app *fiber.App, api fiber.Router, media usecases.MediaService, uploadsDir string) {
	uploadHandler := handlers.NewMediaHandler(media)

	api.Post("/images/upload", uploadHandler.UploadImage)
	api.Post("/videos/upload", uploadHandler.UploadVideo)

	if uploadsDir != "" {
		app.Static(consts.UploadsURLPrefix, uploadsDir)
	}
}
