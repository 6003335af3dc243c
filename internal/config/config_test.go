package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPortParDefaut(t *testing.T) {
	t.Setenv("PORT", "")
	require.Equal(t, "5000", Port())

	t.Setenv("PORT", "8080")
	require.Equal(t, "8080", Port())
}

func TestIsProduction(t *testing.T) {
	t.Setenv("APP_ENV", "")
	require.False(t, IsProduction())

	t.Setenv("APP_ENV", "production")
	require.True(t, IsProduction())
}

func TestAllowedOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://queryhub.example, https://admin.queryhub.example")
	require.Equal(t, []string{"https://queryhub.example", "https://admin.queryhub.example"}, AllowedOrigins())

	t.Setenv("CORS_ORIGINS", "")
	require.Equal(t, []string{"http://localhost:5173"}, AllowedOrigins())
}

func TestMongoURIPrioriteAuOverride(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	require.Equal(t, "mongodb://localhost:27017", MongoURI())

	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_USER", "alice")
	t.Setenv("DB_PASS", "motdepasse")
	require.Contains(t, MongoURI(), "mongodb+srv://alice:motdepasse@")
}
