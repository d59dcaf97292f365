package entities

import (
	"errors"

	"portfolio/internal/domain/category"
)

type Image struct {
	Base         `bson:",inline" yaml:",inline"`
	Ordered      `bson:",inline" yaml:",inline"`
	Title        string `gorm:"type:varchar(255);not null" json:"title" bson:"title"`
	Description  string `gorm:"type:text" json:"description" bson:"description"`
	Category     string `gorm:"type:varchar(50);index" json:"category" bson:"category"`
	ImageURL     string `gorm:"type:varchar(500)" json:"image_url" bson:"image_url"`
	ThumbnailURL string `gorm:"type:varchar(500)" json:"thumbnail_url" bson:"thumbnail_url"`
	Featured     bool   `json:"featured" bson:"featured"`
	StorageKey   string `gorm:"type:varchar(500)" json:"-" bson:"storage_key"`
	ThumbnailKey string `gorm:"type:varchar(500)" json:"-" bson:"thumbnail_key"`
}

func (Image) TableName() string { return "portfolio_images" }

func (i Image) GetCategory() string { return i.Category }

func (i Image) Validate() error {
	if i.Title == "" {
		return errors.New("title is required")
	}
	if _, err := category.Parse(category.KindPhoto, i.Category); err != nil {
		return err
	}
	return nil
}
