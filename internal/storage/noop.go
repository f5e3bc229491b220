package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// noopStorage is used when no object store endpoint is configured. Puts are
// accepted and discarded so the print path does not branch on configuration;
// reads report not found.
type noopStorage struct{}

// NewNoop returns a Storage that retains nothing.
func NewNoop() Storage { return noopStorage{} }

func (noopStorage) Enabled() bool { return false }

func (noopStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{Key: key, Size: n, ContentType: opt.ContentType, LastModified: time.Now(), Metadata: opt.Metadata}, nil
}

func (noopStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	return nil, ObjectInfo{}, fmt.Errorf("object %q not found: archival storage is not configured", key)
}

func (noopStorage) Delete(ctx context.Context, key string) error { return nil }

func (noopStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "", fmt.Errorf("archival storage is not configured")
}
