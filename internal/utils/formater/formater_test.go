package formater

import (
	"testing"
	"twitch_cli/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateTokenLifetime(t *testing.T) {
	assert.Equal(t, "01:02:03", CreateTokenLifetime(3723))
	assert.Equal(t, "00:00:00", CreateTokenLifetime(0))
}

func TestTokenPairText(t *testing.T) {
	text := TokenPairText(&models.TwitchOauthGetTokenResponse{
		AccessToken:  "user-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    14400,
		Scope:        []string{"user:read:follows"},
	})

	assert.Contains(t, text, "TWITCH_ACCESS_TOKEN=user-token\n")
	assert.Contains(t, text, "TWITCH_REFRESH_TOKEN=refresh-token\n")
	assert.Contains(t, text, "user:read:follows")
}

func TestTokenPairText_appToken(t *testing.T) {
	text := TokenPairText(&models.TwitchOauthGetTokenResponse{
		AccessToken: "app-token",
		ExpiresIn:   5011271,
	})

	assert.Contains(t, text, "TWITCH_ACCESS_TOKEN=app-token\n")
	assert.NotContains(t, text, "TWITCH_REFRESH_TOKEN")
}

func TestStreamText_offline(t *testing.T) {
	assert.Equal(t, "offline\n", StreamText(nil))
}

func TestRateLimitText(t *testing.T) {
	text := RateLimitText(models.RateLimit{Limit: 800, Remaining: 0, Reset: 1750000000})
	assert.Equal(t, "ratelimit: 0/800 remaining, resets at 1750000000", text)
}
