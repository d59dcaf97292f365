package mapper

import (
	"portfolio/internal/domain/category"
	"portfolio/internal/domain/dto"
	"portfolio/internal/domain/entities"
)

func ImageToItem(m entities.Image) dto.MediaItem {
	return dto.MediaItem{
		ID:           m.ID,
		Kind:         category.KindPhoto,
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		URL:          m.ImageURL,
		ThumbnailURL: m.ThumbnailURL,
		Featured:     m.Featured,
		Order:        m.Order,
	}
}

func VideoToItem(m entities.Video) dto.MediaItem {
	return dto.MediaItem{
		ID:           m.ID,
		Kind:         category.KindVideo,
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		URL:          m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Featured:     m.Featured,
		Order:        m.Order,
	}
}

func ImagesToItems(images []entities.Image) []dto.MediaItem {
	items := make([]dto.MediaItem, 0, len(images))
	for _, m := range images {
		items = append(items, ImageToItem(m))
	}
	return items
}

func VideosToItems(videos []entities.Video) []dto.MediaItem {
	items := make([]dto.MediaItem, 0, len(videos))
	for _, m := range videos {
		items = append(items, VideoToItem(m))
	}
	return items
}
