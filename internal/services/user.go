package services

import (
	"context"

	"github.com/authpix/apiserver/types"
)

// UserRepository defines the key-value persistence operations for users.
// Email is the sole lookup key.
type UserRepository interface {
	// Create writes the record unconditionally; a racing signup with the
	// same email is last-write-wins.
	Create(ctx context.Context, user types.User) error

	// GetByEmail performs a point lookup; absence is reported as
	// store.ErrNotFound, not as a failure of the call itself.
	GetByEmail(ctx context.Context, email string) (types.User, error)

	// UpdateProfileImage updates a single field, leaving the rest of the
	// record untouched.
	UpdateProfileImage(ctx context.Context, email, imageURL string) error
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, user types.User) error {
	return s.repo.Create(ctx, user)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (types.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) UpdateProfileImage(ctx context.Context, email, imageURL string) error {
	return s.repo.UpdateProfileImage(ctx, email, imageURL)
}
