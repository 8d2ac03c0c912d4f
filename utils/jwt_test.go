package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(42, "ada@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "ada@example.com", claims["email"])
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT(42, "ada@example.com")
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)
}
