package storage

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type BlobStorage interface {
	Put(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	GetURL(key string) string
	Delete(ctx context.Context, key string) error
}
