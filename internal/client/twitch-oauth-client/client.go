package twitch_oauth_client

import (
	"net/http"
	"time"
)

const TwitchIDSchemeHost string = "https://id.twitch.tv"

const requestTimeout = time.Second * 5

// TwitchOauthClient talks to the id.twitch.tv identity service. All token
// operations are single best-effort calls: no retry, no expiry tracking.
type TwitchOauthClient struct {
	schemeHost   string
	clientID     string
	clientSecret string
	redirectURI  string
}

func NewTwitchOauthClient(
	schemeHost, clientID, clientSecret, redirectURI string,
) *TwitchOauthClient {
	return &TwitchOauthClient{
		schemeHost:   schemeHost,
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
	}
}

func newHTTPClient() http.Client {
	return http.Client{
		Timeout: requestTimeout,
	}
}
