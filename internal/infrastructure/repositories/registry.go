package repositories

import (
	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

func NewGormRegistry(db *gorm.DB) *repositories.Registry {
	return &repositories.Registry{
		Personal:   NewGormSingleton[entities.PersonalInfo](db),
		Social:     NewGormSingleton[entities.SocialLinks](db),
		Skills:     NewGormCollection[entities.Skill](db),
		Experience: NewGormCollection[entities.Experience](db),
		Projects:   NewGormCollection[entities.Project](db),
		Awards:     NewGormCollection[entities.Award](db),
		Images:     NewGormCollection[entities.Image](db),
		Videos:     NewGormCollection[entities.Video](db),
	}
}

func NewMongoRegistry(db *mongo.Database) *repositories.Registry {
	return &repositories.Registry{
		Personal:   NewMongoSingleton[entities.PersonalInfo](db),
		Social:     NewMongoSingleton[entities.SocialLinks](db),
		Skills:     NewMongoCollection[entities.Skill](db),
		Experience: NewMongoCollection[entities.Experience](db),
		Projects:   NewMongoCollection[entities.Project](db),
		Awards:     NewMongoCollection[entities.Award](db),
		Images:     NewMongoCollection[entities.Image](db),
		Videos:     NewMongoCollection[entities.Video](db),
	}
}

func NewInMemoryRegistry() *repositories.Registry {
	return &repositories.Registry{
		Personal:   NewInMemorySingleton[entities.PersonalInfo](),
		Social:     NewInMemorySingleton[entities.SocialLinks](),
		Skills:     NewInMemoryCollection[entities.Skill](),
		Experience: NewInMemoryCollection[entities.Experience](),
		Projects:   NewInMemoryCollection[entities.Project](),
		Awards:     NewInMemoryCollection[entities.Award](),
		Images:     NewInMemoryCollection[entities.Image](),
		Videos:     NewInMemoryCollection[entities.Video](),
	}
}
