package twitch_user_authorization

import (
	"time"

	twitch_oauth_client "twitch_cli/internal/client/twitch-oauth-client"
)

// TwitchUserAuthorizationService drives the authorization code grant: it
// hands out the authorization link and runs the one-shot callback listener
// that turns the redirect into a token pair.
type TwitchUserAuthorizationService struct {
	twitchOauthClient *twitch_oauth_client.TwitchOauthClient
	redirectAddr      string
	flushDelay        time.Duration
}

func NewTwitchUserAuthorizationService(
	twitchOauthClient *twitch_oauth_client.TwitchOauthClient,
	redirectAddr string,
) (*TwitchUserAuthorizationService, error) {
	return &TwitchUserAuthorizationService{
		twitchOauthClient: twitchOauthClient,
		redirectAddr:      redirectAddr,
		// lets the confirmation page reach the browser before shutdown
		flushDelay: time.Second,
	}, nil
}
