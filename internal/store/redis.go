package store

import (
	"context"
	"fmt"

	"github.com/authpix/apiserver/config"
	"github.com/authpix/apiserver/types"
	"github.com/redis/go-redis/v9"
)

// RedisUserRepository persists user records as one Redis hash per user at
// "<prefix>:<email>", with hash fields named after the original table
// attributes.
type RedisUserRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisUserRepository constructs a Redis-backed repository from config
// and verifies connectivity with a ping.
func NewRedisUserRepository(ctx context.Context, cfg config.RedisConfig) (*RedisUserRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "user"
	}

	return &RedisUserRepository{client: client, prefix: prefix}, nil
}

func (r *RedisUserRepository) key(email string) string {
	return fmt.Sprintf("%s:%s", r.prefix, email)
}

// Create writes the record unconditionally, replacing any existing hash at
// the same key so stale fields from a previous record cannot survive. Hash
// field names come from the redis struct tags on types.User.
func (r *RedisUserRepository) Create(ctx context.Context, user types.User) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key(user.Email))
		pipe.HSet(ctx, r.key(user.Email), user)
		return nil
	})
	return err
}

// GetByEmail performs a point lookup. An empty hash means the record does
// not exist and is reported as ErrNotFound.
func (r *RedisUserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	cmd := r.client.HGetAll(ctx, r.key(email))
	fields, err := cmd.Result()
	if err != nil {
		return types.User{}, err
	}
	if len(fields) == 0 {
		return types.User{}, ErrNotFound
	}

	var user types.User
	if err := cmd.Scan(&user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// UpdateProfileImage updates the profile_image field in place. HSet on a
// missing key creates a partial hash; per the store contract that case is
// not surfaced as an error.
func (r *RedisUserRepository) UpdateProfileImage(ctx context.Context, email, imageURL string) error {
	return r.client.HSet(ctx, r.key(email), "profile_image", imageURL).Err()
}
