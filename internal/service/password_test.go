package service_test

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgo/foodtracker/backend/internal/service"
)

func legacyDigest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := service.HashPassword("pw123")
	require.NoError(t, err)
	b, err := service.HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", a)
	assert.NotEqual(t, a, b)
	assert.True(t, service.VerifyPassword("pw123", a))
	assert.True(t, service.VerifyPassword("pw123", b))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := service.HashPassword("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
		stored    string
		want      bool
	}{
		{"bcrypt match", "correct horse", hash, true},
		{"bcrypt mismatch", "battery staple", hash, false},
		{"legacy match", "pw123", legacyDigest("pw123"), true},
		{"legacy uppercase match", "pw123", strings.ToUpper(legacyDigest("pw123")), true},
		{"legacy mismatch", "pw124", legacyDigest("pw123"), false},
		{"empty stored hash", "pw123", "", false},
		{"garbage stored hash", "pw123", "not-a-hash", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.VerifyPassword(tt.plaintext, tt.stored))
		})
	}
}
