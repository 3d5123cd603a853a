package main

import (
	"twitch_cli/internal/config"

	twitch_client "twitch_cli/internal/client/twitch-client"
	twitch_oauth_client "twitch_cli/internal/client/twitch-oauth-client"
	twitch_service "twitch_cli/internal/service/twitch"

	"github.com/pkg/errors"
)

func loadConfig() (*config.Config, error) {
	return config.Load(envFile)
}

func newOauthClient(cfg *config.Config) *twitch_oauth_client.TwitchOauthClient {
	return twitch_oauth_client.NewTwitchOauthClient(
		twitch_oauth_client.TwitchIDSchemeHost,
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.RedirectURI(),
	)
}

func newTwitchService(cfg *config.Config) *twitch_service.TwitchService {
	twitchClient := twitch_client.NewTwitchClient(twitch_client.TwitchAPISchemeHost, cfg.ClientID)
	return twitch_service.NewService(twitchClient, newOauthClient(cfg))
}

func requireAccessToken(cfg *config.Config) (string, error) {
	if cfg.AccessToken == "" {
		return "", errors.New("TWITCH_ACCESS_TOKEN is not set")
	}
	return cfg.AccessToken, nil
}

// resolveTarget picks the user/channel a Helix command operates on: the
// positional argument when given, TWITCH_USERNAME otherwise.
func resolveTarget(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Username != "" {
		return cfg.Username, nil
	}
	return "", errors.New("no target given and TWITCH_USERNAME is not set")
}
