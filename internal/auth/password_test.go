package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	salt, digest, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.Len(t, salt, 32, "salt must be 16 bytes hex-encoded")
	_, err = hex.DecodeString(salt)
	assert.NoError(t, err, "salt must be valid hex")

	assert.Len(t, digest, 128, "digest must be 64 bytes hex-encoded")
	_, err = hex.DecodeString(digest)
	assert.NoError(t, err, "digest must be valid hex")

	assert.Equal(t, digest, HashPasswordWithSalt("pw1", salt),
		"digest must be reproducible from the returned salt")
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	salt1, digest1, err := HashPassword("pw1")
	require.NoError(t, err)
	salt2, digest2, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, digest1, digest2)
}

func TestHashPasswordWithSalt_Deterministic(t *testing.T) {
	tests := []struct {
		name     string
		password string
		salt     string
	}{
		{name: "simple password", password: "pw1", salt: "00112233445566778899aabbccddeeff"},
		{name: "empty password", password: "", salt: "00112233445566778899aabbccddeeff"},
		{name: "unicode password", password: "pässwörd", salt: "ffeeddccbbaa99887766554433221100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := HashPasswordWithSalt(tt.password, tt.salt)
			second := HashPasswordWithSalt(tt.password, tt.salt)
			assert.Equal(t, first, second)
		})
	}
}

func TestHashPasswordWithSalt_SingleCharChange(t *testing.T) {
	const salt = "00112233445566778899aabbccddeeff"

	assert.NotEqual(t,
		HashPasswordWithSalt("password1", salt),
		HashPasswordWithSalt("password2", salt),
		"a single-character password change must produce a different digest")
}

func TestHashPasswordWithSalt_SaltMatters(t *testing.T) {
	assert.NotEqual(t,
		HashPasswordWithSalt("pw1", "00112233445566778899aabbccddeeff"),
		HashPasswordWithSalt("pw1", "00112233445566778899aabbccddee00"))
}
