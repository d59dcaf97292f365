package handlers

import (
	"fmt"

	"portfolio/internal/domain/dto"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/usecases"
	apperrors "portfolio/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

// CollectionHandler serves list/create/update/delete for one ordered
// collection (skills, experience, projects, awards).
type CollectionHandler[T any, P usecases.Patch[T]] struct {
	service usecases.ContentService[T]
}

func NewCollectionHandler[T any, P usecases.Patch[T]](service usecases.ContentService[T]) *CollectionHandler[T, P] {
	return &CollectionHandler[T, P]{service: service}
}

// List
//
// @Summary      List records
// @Description  Returns the collection sorted by order, optionally filtered by category
// @Tags         Content
// @Produce      json
// @Param        resource  path   string true  "skills | experience | projects | awards"
// @Param        category  query  string false "Category filter"
// @Success      200  {array}   object
// @Failure      500  {object}  errors.ErrorResponse
// @Router       /{resource} [get]
func (h *CollectionHandler[T, P]) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext(), repositories.ListFilter{Category: c.Query("category")})
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create
//
// @Summary      Create record
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        resource  path  string true "skills | experience | projects | awards"
// @Success      201  {object}  object
// @Failure      400  {object}  errors.ErrorResponse
// @Router       /{resource} [post]
func (h *CollectionHandler[T, P]) Create(c *fiber.Ctx) error {
	item := new(T)
	if err := c.BodyParser(item); err != nil {
		return apperrors.ErrValidation("Invalid request body", err)
	}
	created, err := h.service.Create(c.UserContext(), item)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update
//
// @Summary      Update record
// @Description  Only the fields present in the body are changed
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        resource  path  string true "skills | experience | projects | awards"
// @Param        id        path  string true "Record ID"
// @Success      200  {object}  object
// @Failure      400  {object}  errors.ErrorResponse
// @Failure      404  {object}  errors.ErrorResponse
// @Router       /{resource}/{id} [put]
func (h *CollectionHandler[T, P]) Update(c *fiber.Ctx) error {
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return apperrors.ErrValidation("Invalid request body", err)
	}
	updated, err := h.service.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// Delete
//
// @Summary      Delete record
// @Tags         Content
// @Produce      json
// @Param        resource  path  string true "skills | experience | projects | awards"
// @Param        id        path  string true "Record ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  errors.ErrorResponse
// @Router       /{resource}/{id} [delete]
func (h *CollectionHandler[T, P]) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("%s deleted successfully", h.service.Name())})
}

// SingletonHandler serves personal info and social links.
type SingletonHandler[T any, P usecases.Patch[T]] struct {
	service usecases.SingletonService[T]
}

func NewSingletonHandler[T any, P usecases.Patch[T]](service usecases.SingletonService[T]) *SingletonHandler[T, P] {
	return &SingletonHandler[T, P]{service: service}
}

// Get
//
// @Summary      Get singleton
// @Tags         Content
// @Produce      json
// @Param        resource  path  string true "personal | social"
// @Success      200  {object}  object
// @Failure      404  {object}  errors.ErrorResponse
// @Router       /{resource} [get]
func (h *SingletonHandler[T, P]) Get(c *fiber.Ctx) error {
	item, err := h.service.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// Update
//
// @Summary      Update singleton
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        resource  path  string true "personal | social"
// @Success      200  {object}  object
// @Failure      404  {object}  errors.ErrorResponse
// @Router       /{resource} [put]
func (h *SingletonHandler[T, P]) Update(c *fiber.Ctx) error {
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return apperrors.ErrValidation("Invalid request body", err)
	}
	updated, err := h.service.Update(c.UserContext(), patch)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}
