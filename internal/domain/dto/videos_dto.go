package dto

import "portfolio/internal/domain/entities"

type VideoUpdate struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	VideoURL     *string `json:"video_url,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	Order        *int    `json:"order,omitempty"`
	Featured     *bool   `json:"featured,omitempty"`
}

func (u VideoUpdate) Apply(e *entities.Video) {
	set(&e.Title, u.Title)
	set(&e.Description, u.Description)
	set(&e.Category, u.Category)
	set(&e.VideoURL, u.VideoURL)
	set(&e.ThumbnailURL, u.ThumbnailURL)
	set(&e.Duration, u.Duration)
	set(&e.Order, u.Order)
	set(&e.Featured, u.Featured)
}
