package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWTToken(t *testing.T) {
	// Arrange
	const (
		issuer  = "pawtrail"
		signKey = "test-secret"
		userID  = int64(42)
	)

	// Act
	token, err := GenerateJWTToken(issuer, userID, time.Hour, signKey)

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, signKey, issuer)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: "k"},
		{name: "zero duration", issuer: "pawtrail", duration: 0, signKey: "k"},
		{name: "empty sign key", issuer: "pawtrail", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("pawtrail", 7, time.Hour, "right-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "wrong-key", "pawtrail")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", 7, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "key", "pawtrail")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("pawtrail", 7, -time.Minute, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "key", "pawtrail")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	got, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)
}

func TestParseUserIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("pawtrail", 123, time.Hour, "key")
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(123), id)

	_, err = ParseUserIDFromJWT("not-a-token")
	assert.Error(t, err)
}

func TestGetUserIDFromContext(t *testing.T) {
	ctx := t.Context()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}
