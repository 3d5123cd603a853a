package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_missingClientID(t *testing.T) {
	os.Unsetenv("TWITCH_CLIENT_ID")
	os.Unsetenv("TWITCH_CLIENT_SECRET")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_fromEnvironment(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "test-client-id")
	t.Setenv("TWITCH_CLIENT_SECRET", "test-secret")
	t.Setenv("TWITCH_ACCESS_TOKEN", "test-token")
	t.Setenv("TWITCH_REFRESH_TOKEN", "test-refresh")
	t.Setenv("TWITCH_USERNAME", "someuser")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-client-id", cfg.ClientID)
	assert.Equal(t, "test-secret", cfg.ClientSecret)
	assert.Equal(t, "test-token", cfg.AccessToken)
	assert.Equal(t, "test-refresh", cfg.RefreshToken)
	assert.Equal(t, "someuser", cfg.Username)
	assert.Equal(t, "localhost:3000", cfg.RedirectAddr)
	assert.Equal(t, "http://localhost:3000/callback", cfg.RedirectURI())
}

func TestLoad_redirectAddrOverride(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "test-client-id")
	t.Setenv("TWITCH_CLIENT_SECRET", "test-secret")
	t.Setenv("TWITCH_REDIRECT_ADDR", "localhost:8123")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8123/callback", cfg.RedirectURI())
}

func TestLoad_fromSecretsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	contents := "TWITCH_CLIENT_ID=file-client-id\nTWITCH_CLIENT_SECRET=file-secret\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-client-id", cfg.ClientID)
	assert.Equal(t, "file-secret", cfg.ClientSecret)
}
