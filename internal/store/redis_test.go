package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/authpix/apiserver/config"
	"github.com/authpix/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo starts a miniredis instance and connects a repository to it.
func setupTestRepo(t *testing.T) *RedisUserRepository {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	repo, err := NewRedisUserRepository(context.Background(), config.RedisConfig{
		Addr:      mr.Addr(),
		KeyPrefix: "user",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.client.Close()
	})

	return repo
}

func testUser(email string) types.User {
	return types.User{
		Email:           email,
		Name:            "A",
		PasswordHash:    "deadbeef",
		Salt:            "00112233445566778899aabbccddeeff",
		ProfileImageURL: "https://profile-images-auth-app.s3.amazonaws.com/img1.png",
		CreatedAt:       "2026-08-28T12:00:00Z",
	}
}

func TestRedisUserRepository_CreateAndGet(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	user := testUser("a@b.com")
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestRedisUserRepository_GetByEmail_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetByEmail(context.Background(), "missing@b.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisUserRepository_Create_Overwrites(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first := testUser("a@b.com")
	require.NoError(t, repo.Create(ctx, first))

	second := testUser("a@b.com")
	second.Name = "B"
	second.Salt = "ffeeddccbbaa99887766554433221100"
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, second, got, "second signup must fully replace the first record")
}

func TestRedisUserRepository_UpdateProfileImage(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	user := testUser("a@b.com")
	require.NoError(t, repo.Create(ctx, user))

	const newURL = "https://profile-images-auth-app.s3.amazonaws.com/img2.png"
	require.NoError(t, repo.UpdateProfileImage(ctx, "a@b.com", newURL))

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, newURL, got.ProfileImageURL)

	// Every other field stays untouched.
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
	assert.Equal(t, user.Salt, got.Salt)
	assert.Equal(t, user.CreatedAt, got.CreatedAt)
}

func TestRedisUserRepository_UpdateProfileImage_MissingUser(t *testing.T) {
	repo := setupTestRepo(t)

	// Updating a non-existent user is not an error at the store level.
	err := repo.UpdateProfileImage(context.Background(), "missing@b.com", "https://x/y.png")
	assert.NoError(t, err)
}
