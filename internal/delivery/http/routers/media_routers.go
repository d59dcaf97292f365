package routers

import (
	"portfolio/internal/delivery/http/handlers"
	"portfolio/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

func SetupMediaRoutes(api fiber.Router, media usecases.MediaService) {
	mediaHandler := handlers.NewMediaHandler(media)

	api.Get("/images", mediaHandler.ListImages)
	api.Put("/images/:id", mediaHandler.UpdateImage)
	api.Delete("/images/:id", mediaHandler.DeleteImage)

	api.Get("/videos", mediaHandler.ListVideos)
	api.Put("/videos/:id", mediaHandler.UpdateVideo)
	api.Delete("/videos/:id", mediaHandler.DeleteVideo)
}
