package storage

import (
	"context"
	"time"
)

// DefaultPresignExpiry is how long an issued upload URL stays valid.
const DefaultPresignExpiry = time.Hour

// ObjectStorage defines the object-store operations this service needs
// across backends: brokering direct uploads via presigned URLs, best-effort
// deletion, and deriving the public URL a stored object will have.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
	ObjectURL(key string) string
	Bucket() string
}

// Storage wraps an ObjectStorage backend with a stable API.
type Storage struct {
	backend ObjectStorage
}

// NewStorage constructs a Storage wrapper for the provided backend.
func NewStorage(backend ObjectStorage) *Storage {
	return &Storage{backend: backend}
}

// EnsureBucket ensures the configured bucket exists.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	return s.backend.EnsureBucket(ctx)
}

// PresignPut issues a time-limited URL granting a single PUT of the given
// key. The key is neither reserved nor checked for prior existence.
func (s *Storage) PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	return s.backend.PresignPut(ctx, key, contentType, expiry)
}

// Delete removes an object from the configured bucket. Deleting an absent
// object is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}

// ObjectURL returns the public URL the object at key will have once
// uploaded. The object itself may not exist yet.
func (s *Storage) ObjectURL(key string) string {
	return s.backend.ObjectURL(key)
}

// Bucket returns the configured bucket name.
func (s *Storage) Bucket() string {
	return s.backend.Bucket()
}
