package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadWithoutJWTSecret(t *testing.T) {
	// Tooling commands (migrate, seed) load the config without a secret;
	// Load must return instead of terminating the process.
	t.Setenv("JWT_SECRET", "")
	t.Setenv("LISTEN_ADDR", "")

	env := Load()

	assert.Empty(t, env.JWTSecret)
	assert.Equal(t, ":8080", env.ListenAddr)
}

func TestLoadSetsJwtKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	env := Load()

	assert.Equal(t, "test-secret", env.JWTSecret)
	assert.Equal(t, []byte("test-secret"), JwtKey)
}
