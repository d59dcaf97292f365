package entities

import (
	"errors"

	"portfolio/internal/domain/category"
)

type Video struct {
	Base         `bson:",inline" yaml:",inline"`
	Ordered      `bson:",inline" yaml:",inline"`
	Title        string `gorm:"type:varchar(255);not null" json:"title" bson:"title"`
	Description  string `gorm:"type:text" json:"description" bson:"description"`
	Category     string `gorm:"type:varchar(50);index" json:"category" bson:"category"`
	VideoURL     string `gorm:"type:varchar(500)" json:"video_url" bson:"video_url"`
	ThumbnailURL string `gorm:"type:varchar(500)" json:"thumbnail_url" bson:"thumbnail_url"`
	Duration     int    `json:"duration" bson:"duration"` // seconds
	Featured     bool   `json:"featured" bson:"featured"`
	StorageKey   string `gorm:"type:varchar(500)" json:"-" bson:"storage_key"`
	ThumbnailKey string `gorm:"type:varchar(500)" json:"-" bson:"thumbnail_key"`
}

func (Video) TableName() string { return "videos" }

func (v Video) GetCategory() string { return v.Category }

func (v Video) Validate() error {
	if v.Title == "" {
		return errors.New("title is required")
	}
	if _, err := category.Parse(category.KindVideo, v.Category); err != nil {
		return err
	}
	return nil
}
