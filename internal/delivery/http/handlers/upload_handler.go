package handlers

import (
	"strconv"

	"portfolio/internal/domain/category"
	"portfolio/internal/domain/dto"
	apperrors "portfolio/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

// UploadImage
//
// @Summary      Upload image
// @Description  Stores the file under images/<category>/ and builds a 300x300 thumbnail
// @Tags         Images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file   true  "Image file (jpeg, png, gif, webp)"
// @Param        title        formData  string true  "Title"
// @Param        description  formData  string false "Description"
// @Param        category     formData  string true  "Photo category"
// @Param        featured     formData  bool   false "Featured"
// @Success      200          {object}  entities.Image
// @Failure      400          {object}  errors.ErrorResponse
// @Failure      500          {object}  errors.ErrorResponse
// @Router       /images/upload [post]
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	in, closeFn, err := uploadInput(c, category.KindPhoto)
	if err != nil {
		return err
	}
	defer closeFn()

	image, err := h.service.UploadImage(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(image)
}

// UploadVideo
//
// @Summary      Upload video
// @Description  Stores the file under videos/<category>/; the worker fills in thumbnail and duration
// @Tags         Videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file   true  "Video file (mp4, avi, mov, wmv, flv, webm)"
// @Param        title        formData  string true  "Title"
// @Param        description  formData  string false "Description"
// @Param        category     formData  string true  "Video category"
// @Param        featured     formData  bool   false "Featured"
// @Success      200          {object}  entities.Video
// @Failure      400          {object}  errors.ErrorResponse
// @Failure      500          {object}  errors.ErrorResponse
// @Router       /videos/upload [post]
func (h *MediaHandler) UploadVideo(c *fiber.Ctx) error {
	in, closeFn, err := uploadInput(c, category.KindVideo)
	if err != nil {
		return err
	}
	defer closeFn()

	video, err := h.service.UploadVideo(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(video)
}

func uploadInput(c *fiber.Ctx, kind category.Kind) (dto.UploadInput, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return dto.UploadInput{}, nil, apperrors.ErrValidation("File is required", err)
	}

	// Boş değer false sayılır
	featured := false
	if raw := c.FormValue("featured"); raw != "" {
		if featured, err = strconv.ParseBool(raw); err != nil {
			return dto.UploadInput{}, nil, apperrors.ErrValidation("featured must be true or false", err)
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return dto.UploadInput{}, nil, apperrors.ErrUploadFailed(err)
	}

	return dto.UploadInput{
		Kind:        kind,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
		Form: dto.UploadForm{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Category:    c.FormValue("category"),
			Featured:    featured,
		},
	}, func() { file.Close() }, nil
}
