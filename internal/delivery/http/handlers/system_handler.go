package handlers

import (
	"portfolio/internal/domain/dto"
	"portfolio/internal/usecases"
	consts "portfolio/pkg/constants"

	"github.com/gofiber/fiber/v2"
)

// Health
//
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: consts.StatusHealthy, Message: "Portfolio API is running"})
}

// Root
//
// @Summary      API banner
// @Tags         System
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       / [get]
func Root(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "Portfolio API"})
}

// Categories
//
// @Summary      Media categories
// @Description  Value/label pairs for photo and video categories
// @Tags         System
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /categories [get]
func Categories(c *fiber.Ctx) error {
	return c.JSON(usecases.CategoryOptions())
}
