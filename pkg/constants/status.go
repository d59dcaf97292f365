package constants

const (
	StatusOK      = "ok"
	StatusHealthy = "healthy"
	StatusFailed  = "failed"
)

// Media lifecycle as stored on images/videos.
const (
	MediaStatusReady      = "ready"
	MediaStatusProcessing = "processing"
)

const (
	APIPrefix        = "/api"
	UploadsURLPrefix = "/api/uploads"

	JobQueueKey = "portfolio:job_queue"
)

// Storage folders under the uploads root.
const (
	FolderImages     = "images"
	FolderVideos     = "videos"
	FolderThumbnails = "thumbnails"
)

const (
	MaxImageSize = 50 * 1024 * 1024   // 50MB
	MaxVideoSize = 1000 * 1024 * 1024 // 1000MB
)
