package queue

import (
	"encoding/json"
	"fmt"
)

type JobType string

const (
	JobImageThumbnail JobType = "image_thumbnail"
	JobVideoThumbnail JobType = "video_thumbnail"
)

const MaxAttempts = 3

type Job struct {
	Type       JobType `json:"type"`
	MediaID    string  `json:"media_id"`
	StorageKey string  `json:"storage_key"`
	Attempt    int     `json:"attempt,omitempty"`
}

func DeserializeJob(data string) (*Job, error) {
	var job Job
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to deserialize job: %w", err)
	}
	if job.Type == "" || job.MediaID == "" {
		return nil, fmt.Errorf("failed to deserialize job: missing type or media id")
	}
	return &job, nil
}

func SerializeJob(job Job) (string, error) {
	bytes, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to serialize job: %w", err)
	}
	return string(bytes), nil
}
