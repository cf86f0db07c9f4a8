package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "dynamodb", cfg.UserStore)
	assert.Equal(t, "s3", cfg.StorageBackend)
	assert.Equal(t, "", cfg.EventsBackend)
	assert.Equal(t, "Users", cfg.Dynamo.Table)
	assert.Equal(t, "profile-images-auth-app", cfg.S3.Bucket)
	assert.Equal(t, "user", cfg.Redis.KeyPrefix)
	assert.Equal(t, "auth-events", cfg.RabbitMQ.Queue)
	assert.True(t, cfg.RabbitMQ.QueueDurable)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("USER_STORE", "redis")
	t.Setenv("STORAGE_BACKEND", "minio")
	t.Setenv("EVENTS_BACKEND", "rabbitmq")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := LoadConfig()

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "redis", cfg.UserStore)
	assert.Equal(t, "minio", cfg.StorageBackend)
	assert.Equal(t, "rabbitmq", cfg.EventsBackend)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.True(t, cfg.Minio.UseSSL)
}

func TestGetEnvBool_Invalid(t *testing.T) {
	t.Setenv("MINIO_USE_SSL", "not-a-bool")

	cfg := LoadConfig()

	assert.False(t, cfg.Minio.UseSSL, "unparseable bool falls back to the default")
}
