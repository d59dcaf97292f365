package repositories

import (
	"context"
	"io"
)

// StorageStrategy stores uploaded files under slash separated keys such as
// "images/fashion/<id>.jpg" and hands back the public URL.
type StorageStrategy interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) bool
	URL(key string) string
}
