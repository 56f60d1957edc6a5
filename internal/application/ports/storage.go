package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStorage almacenamiento S3 compatible para imágenes de productos.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
