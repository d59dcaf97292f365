package dto

import (
	"io"

	"portfolio/internal/domain/category"
)

type MediaFilter struct {
	Category string // boşsa tüm kategoriler
}

// UploadForm is the non-file part of a multipart media upload.
type UploadForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Category    string `form:"category"`
	Featured    bool   `form:"featured"`
}

// UploadInput is an upload after the transport layer has been peeled off.
type UploadInput struct {
	Kind        category.Kind
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	Form        UploadForm
}

// MediaItem is the kind-independent view of an image or video used by the
// site and the uploader listing.
type MediaItem struct {
	ID           string        `json:"id"`
	Kind         category.Kind `json:"kind"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	URL          string        `json:"url"`
	ThumbnailURL string        `json:"thumbnail_url"`
	Featured     bool          `json:"featured"`
	Order        int           `json:"order"`
}
