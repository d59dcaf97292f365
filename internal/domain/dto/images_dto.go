package dto

import "portfolio/internal/domain/entities"

type ImageUpdate struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Order        *int    `json:"order,omitempty"`
	Featured     *bool   `json:"featured,omitempty"`
}

func (u ImageUpdate) Apply(e *entities.Image) {
	set(&e.Title, u.Title)
	set(&e.Description, u.Description)
	set(&e.Category, u.Category)
	set(&e.ImageURL, u.ImageURL)
	set(&e.ThumbnailURL, u.ThumbnailURL)
	set(&e.Order, u.Order)
	set(&e.Featured, u.Featured)
}
