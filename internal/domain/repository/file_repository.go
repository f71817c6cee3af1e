package repository

import (
	"context"
	"io"
	"time"
)

// FileRepository stores attachment bytes in object storage.
type FileRepository interface {
	// Upload writes the object under key and returns when it is stored.
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error

	// PresignDownload returns a time-limited URL for fetching the object.
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error
}
