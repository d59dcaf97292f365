package repositories

import "portfolio/internal/domain/entities"

// Registry groups the repositories of every portfolio resource.
type Registry struct {
	Personal   SingletonRepository[entities.PersonalInfo]
	Social     SingletonRepository[entities.SocialLinks]
	Skills     CollectionRepository[entities.Skill]
	Experience CollectionRepository[entities.Experience]
	Projects   CollectionRepository[entities.Project]
	Awards     CollectionRepository[entities.Award]
	Images     CollectionRepository[entities.Image]
	Videos     CollectionRepository[entities.Video]
}
