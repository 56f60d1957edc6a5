package storage

import (
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"

	"github.com/NotSleepp/possbien/pkg/config"
)

func TestNewMinIO_ConfiguracionIncompleta(t *testing.T) {
	cases := map[string]config.MinIOConfig{
		"sin endpoint":     {AccessKey: "a", SecretKey: "s", Bucket: "b"},
		"sin credenciales": {Endpoint: "localhost:9000", Bucket: "b"},
		"sin bucket":       {Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewMinIO(context.Background(), cfg)
			assert.Error(t, err)
		})
	}
}

func TestPresignGet_SinRed(t *testing.T) {
	// Con región fija la firma se calcula localmente, sin servidor.
	s, err := newForTest("localhost:9000", "productos")
	if !assert.NoError(t, err) {
		return
	}
	u, err := s.PresignGet(context.Background(), "productos/emp/p/img.png", 15*time.Minute)
	assert.NoError(t, err)
	assert.Contains(t, u, "http://localhost:9000/productos/productos/emp/p/img.png")
	assert.Contains(t, u, "X-Amz-Signature=")
}

func newForTest(endpoint, bucket string) (*MinIOStorage, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minio", "minio123", ""),
		Region: "us-east-1",
	})
	if err != nil {
		return nil, err
	}
	return &MinIOStorage{client: cli, bucket: bucket}, nil
}
