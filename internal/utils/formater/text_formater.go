package formater

import (
	"fmt"
	"strings"
	"time"
	"twitch_cli/internal/models"
)

// TokenPairText renders a token pair as secrets-file lines so the operator
// can copy them straight into the dotenv file.
func TokenPairText(data *models.TwitchOauthGetTokenResponse) string {

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("TWITCH_ACCESS_TOKEN=%s\n", data.AccessToken))
	if data.RefreshToken != "" {
		sb.WriteString(fmt.Sprintf("TWITCH_REFRESH_TOKEN=%s\n", data.RefreshToken))
	}
	sb.WriteString(fmt.Sprintf("# expires in %d seconds", data.ExpiresIn))
	if len(data.Scope) > 0 {
		sb.WriteString(fmt.Sprintf(", scopes: %s", strings.Join(data.Scope, " ")))
	}
	sb.WriteString("\n")

	return sb.String()
}

func ValidateTokenText(data *models.TwitchOauthValidateTokenResponse) string {

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("login:     %s\n", data.Login))
	sb.WriteString(fmt.Sprintf("user id:   %s\n", data.UserId))
	sb.WriteString(fmt.Sprintf("scopes:    %s\n", strings.Join(data.Scopes, " ")))
	sb.WriteString(fmt.Sprintf("expires:   %s\n", CreateTokenLifetime(data.ExpiresIn)))

	return sb.String()
}

func UserText(user *models.TwitchUserInfo) string {

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s (id %s)\n", user.DisplayName, user.UserID))
	if user.BroadcasterType != "" {
		sb.WriteString(fmt.Sprintf("broadcaster type: %s\n", user.BroadcasterType))
	}
	if user.Description != "" {
		sb.WriteString(fmt.Sprintf("description: %s\n", user.Description))
	}
	sb.WriteString(fmt.Sprintf("created: %s\n", user.CreatedAt.Format(time.RFC3339)))

	return sb.String()
}

func StreamText(stream *models.Stream) string {

	if stream == nil {
		return "offline\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("live: %s\n", stream.Title))
	if stream.GameName != "" {
		sb.WriteString(fmt.Sprintf("game: %s\n", stream.GameName))
	}
	sb.WriteString(fmt.Sprintf("viewers: %d, uptime %s\n", stream.ViewerCount, CreateStreamDuration(stream.StartedAt)))

	return sb.String()
}

func RateLimitText(rl models.RateLimit) string {
	return fmt.Sprintf("ratelimit: %d/%d remaining, resets at %d", rl.Remaining, rl.Limit, rl.Reset)
}
