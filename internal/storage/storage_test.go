package storage

import (
	"context"
	"testing"
	"time"

	"github.com/authpix/apiserver/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	presignedKey  string
	presignedType string
	deletedKey    string
	expiry        time.Duration
}

func (s *stubBackend) EnsureBucket(ctx context.Context) error { return nil }

func (s *stubBackend) PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	s.presignedKey = key
	s.presignedType = contentType
	s.expiry = expiry
	return "https://signed.example/" + key, nil
}

func (s *stubBackend) Delete(ctx context.Context, key string) error {
	s.deletedKey = key
	return nil
}

func (s *stubBackend) ObjectURL(key string) string { return "https://public.example/" + key }

func (s *stubBackend) Bucket() string { return "stub-bucket" }

func TestStorage_DelegatesToBackend(t *testing.T) {
	backend := &stubBackend{}
	st := NewStorage(backend)
	ctx := context.Background()

	url, err := st.PresignPut(ctx, "img1.png", "image/png", DefaultPresignExpiry)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/img1.png", url)
	assert.Equal(t, "img1.png", backend.presignedKey)
	assert.Equal(t, "image/png", backend.presignedType)
	assert.Equal(t, time.Hour, backend.expiry)

	require.NoError(t, st.Delete(ctx, "old.png"))
	assert.Equal(t, "old.png", backend.deletedKey)

	assert.Equal(t, "https://public.example/a.png", st.ObjectURL("a.png"))
	assert.Equal(t, "stub-bucket", st.Bucket())
}

func TestS3Client_ObjectURL(t *testing.T) {
	c := &S3Client{bucket: "profile-images-auth-app"}

	assert.Equal(t,
		"https://profile-images-auth-app.s3.amazonaws.com/img1.png",
		c.ObjectURL("img1.png"))
}

func TestMinioClient_ObjectURL(t *testing.T) {
	client, err := NewMinioClient(config.MinioConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "profile-images",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/profile-images/img1.png", client.ObjectURL("img1.png"))
	assert.Equal(t, "profile-images", client.Bucket())
}

func TestGCSClient_ObjectURL(t *testing.T) {
	g := &GCSClient{bucket: "profile-images"}

	assert.Equal(t, "https://storage.googleapis.com/profile-images/img1.png", g.ObjectURL("img1.png"))
}

func TestNewMinioClient_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinioConfig
	}{
		{name: "missing endpoint", cfg: config.MinioConfig{AccessKey: "a", SecretKey: "s", Bucket: "b"}},
		{name: "missing credentials", cfg: config.MinioConfig{Endpoint: "localhost:9000", Bucket: "b"}},
		{name: "missing bucket", cfg: config.MinioConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMinioClient(tt.cfg)
			assert.Error(t, err)
		})
	}
}
