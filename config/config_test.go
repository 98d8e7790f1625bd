package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Environment: "development"}
	assert.True(t, cfg.IsDevelopment())

	cfg = &Config{Environment: "production"}
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}

func TestLoadWithOptions(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("SERVER_PORT", "9000")
	os.Setenv("SERVER_HOST", "127.0.0.1")
	os.Setenv("DB_HOST", "testhost")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "oneclicktag_test")
	os.Setenv("SMTP_HOST", "smtp.example.com")
	os.Setenv("SMTP_FROM_EMAIL", "noreply@example.com")
	os.Setenv("CORS_ORIGIN", "https://app.example.com")
	os.Setenv("ROOT_EMAIL", "root@example.com")
	os.Setenv("ROOT_PASSWORD", "rootpass123")
	os.Setenv("EARLY_ACCESS", "true")
	os.Setenv("ENVIRONMENT", "development")

	defer func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("SERVER_HOST")
		os.Unsetenv("DB_HOST")
		os.Unsetenv("DB_USER")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("DB_NAME")
		os.Unsetenv("SMTP_HOST")
		os.Unsetenv("SMTP_FROM_EMAIL")
		os.Unsetenv("CORS_ORIGIN")
		os.Unsetenv("ROOT_EMAIL")
		os.Unsetenv("ROOT_PASSWORD")
		os.Unsetenv("EARLY_ACCESS")
		os.Unsetenv("ENVIRONMENT")
	}()

	cfg, err := LoadWithOptions(LoadOptions{
		// No EnvFile so only environment variables apply
	})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "testhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "testuser", cfg.Database.User)
	assert.Equal(t, "testpass", cfg.Database.Password)
	assert.Equal(t, "oneclicktag_test", cfg.Database.DBName)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "noreply@example.com", cfg.SMTP.FromEmail)
	assert.Equal(t, "OneClickTag", cfg.SMTP.FromName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "https://app.example.com", cfg.CORSOrigin)
	assert.Equal(t, "root@example.com", cfg.RootEmail)
	assert.Equal(t, "rootpass123", cfg.RootPassword)
	assert.True(t, cfg.EarlyAccess)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadWithOptions_RequiresJWTSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestLoadWithOptions_Defaults(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "oneclicktag", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.EarlyAccess)
}
