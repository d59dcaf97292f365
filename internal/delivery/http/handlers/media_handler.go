package handlers

import (
	"portfolio/internal/domain/category"
	"portfolio/internal/domain/dto"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/usecases"
	apperrors "portfolio/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type MediaHandler struct {
	service usecases.MediaService
}

func NewMediaHandler(service usecases.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// ListImages
//
// @Summary      List images
// @Description  Returns portfolio images sorted by order, optionally filtered by category
// @Tags         Images
// @Produce      json
// @Param        category  query     string false "fashion | covers | stillLife | artPhotoPainting | editorial"
// @Success      200       {array}   entities.Image
// @Failure      400       {object}  errors.ErrorResponse "Unknown category"
// @Router       /images [get]
func (h *MediaHandler) ListImages(c *fiber.Ctx) error {
	filter, err := mediaFilter(c, category.KindPhoto)
	if err != nil {
		return err
	}
	images, err := h.service.ListImages(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(images)
}

// UpdateImage
//
// @Summary      Update image metadata
// @Tags         Images
// @Accept       json
// @Produce      json
// @Param        id       path      string          true "Image ID"
// @Param        request  body      dto.ImageUpdate true "Fields to change"
// @Success      200      {object}  entities.Image
// @Failure      400      {object}  errors.ErrorResponse
// @Failure      404      {object}  errors.ErrorResponse
// @Router       /images/{id} [put]
func (h *MediaHandler) UpdateImage(c *fiber.Ctx) error {
	var req dto.ImageUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperrors.ErrValidation("Invalid request body", err)
	}
	image, err := h.service.UpdateImage(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(image)
}

// DeleteImage
//
// @Summary      Delete image
// @Description  Deletes the record together with its stored file and thumbnail
// @Tags         Images
// @Produce      json
// @Param        id   path      string true "Image ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  errors.ErrorResponse
// @Router       /images/{id} [delete]
func (h *MediaHandler) DeleteImage(c *fiber.Ctx) error {
	if err := h.service.DeleteImage(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Image deleted successfully"})
}

// ListVideos
//
// @Summary      List videos
// @Tags         Videos
// @Produce      json
// @Param        category  query     string false "tv-show | interview | behind-scenes | workshop | art-direction | melrose-heights"
// @Success      200       {array}   entities.Video
// @Failure      400       {object}  errors.ErrorResponse "Unknown category"
// @Router       /videos [get]
func (h *MediaHandler) ListVideos(c *fiber.Ctx) error {
	filter, err := mediaFilter(c, category.KindVideo)
	if err != nil {
		return err
	}
	videos, err := h.service.ListVideos(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(videos)
}

// UpdateVideo
//
// @Summary      Update video metadata
// @Tags         Videos
// @Accept       json
// @Produce      json
// @Param        id       path      string          true "Video ID"
// @Param        request  body      dto.VideoUpdate true "Fields to change"
// @Success      200      {object}  entities.Video
// @Failure      400      {object}  errors.ErrorResponse
// @Failure      404      {object}  errors.ErrorResponse
// @Router       /videos/{id} [put]
func (h *MediaHandler) UpdateVideo(c *fiber.Ctx) error {
	var req dto.VideoUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperrors.ErrValidation("Invalid request body", err)
	}
	video, err := h.service.UpdateVideo(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(video)
}

// DeleteVideo
//
// @Summary      Delete video
// @Tags         Videos
// @Produce      json
// @Param        id   path      string true "Video ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  errors.ErrorResponse
// @Router       /videos/{id} [delete]
func (h *MediaHandler) DeleteVideo(c *fiber.Ctx) error {
	if err := h.service.DeleteVideo(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Video deleted successfully"})
}

func mediaFilter(c *fiber.Ctx, kind category.Kind) (repositories.ListFilter, error) {
	raw := c.Query("category")
	if raw == "" {
		return repositories.ListFilter{}, nil
	}
	cat, err := category.Parse(kind, raw)
	if err != nil {
		return repositories.ListFilter{}, apperrors.ErrValidation(err.Error(), err)
	}
	return repositories.ListFilter{Category: string(cat)}, nil
}
