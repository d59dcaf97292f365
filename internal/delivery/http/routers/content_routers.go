package routers

import (
	"portfolio/internal/delivery/http/handlers"
	"portfolio/internal/domain/dto"
	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SetupContentRoutes(api fiber.Router, repos *repositories.Registry, logger *zap.Logger) {
	personal := handlers.NewSingletonHandler[entities.PersonalInfo, dto.PersonalInfoUpdate](
		usecases.NewSingletonService(repos.Personal, "Personal information"))
	api.Get("/personal", personal.Get)
	api.Put("/personal", personal.Update)

	social := handlers.NewSingletonHandler[entities.SocialLinks, dto.SocialLinksUpdate](
		usecases.NewSingletonService(repos.Social, "Social links"))
	api.Get("/social", social.Get)
	api.Put("/social", social.Update)

	mountCollection(api, "/skills", handlers.NewCollectionHandler[entities.Skill, dto.SkillUpdate](
		usecases.NewContentService(repos.Skills, "Skill", logger)))
	mountCollection(api, "/experience", handlers.NewCollectionHandler[entities.Experience, dto.ExperienceUpdate](
		usecases.NewContentService(repos.Experience, "Experience", logger)))
	mountCollection(api, "/projects", handlers.NewCollectionHandler[entities.Project, dto.ProjectUpdate](
		usecases.NewContentService(repos.Projects, "Project", logger)))
	mountCollection(api, "/awards", handlers.NewCollectionHandler[entities.Award, dto.AwardUpdate](
		usecases.NewContentService(repos.Awards, "Award", logger)))
}

type collectionRoutes interface {
	List(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func mountCollection(api fiber.Router, path string, h collectionRoutes) {
	api.Get(path, h.List)
	api.Post(path, h.Create)
	api.Put(path+"/:id", h.Update)
	api.Delete(path+"/:id", h.Delete)
}
