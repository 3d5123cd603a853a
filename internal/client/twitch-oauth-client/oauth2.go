package twitch_oauth_client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"twitch_cli/internal/models"

	"github.com/pkg/errors"
)

// TwitchCreateOAuth2Link builds the authorization endpoint URL the user
// opens in a browser to start the authorization code grant. Pure
// construction, no request is made here.
func (twc *TwitchOauthClient) TwitchCreateOAuth2Link(scopes []models.Scope) string {

	scopeStrs := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		scopeStrs = append(scopeStrs, string(scope))
	}

	query := url.Values{}
	query.Set("client_id", twc.clientID)
	query.Set("redirect_uri", twc.redirectURI)
	query.Set("response_type", "code")
	query.Set("scope", strings.Join(scopeStrs, " "))

	return twc.schemeHost + "/oauth2/authorize?" + query.Encode()
}

// TwitchGetUserToken exchanges a one-time authorization code for a user
// token pair. The code is consumed by the exchange whether or not it
// succeeds; there is no retry.
func (twc *TwitchOauthClient) TwitchGetUserToken(ctx context.Context, code string) (data *models.TwitchOauthGetTokenResponse, err error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twc.schemeHost+"/oauth2/token", nil)
	if err != nil {
		return nil, err
	}

	query := req.URL.Query()
	query.Add("client_id", twc.clientID)
	query.Add("client_secret", twc.clientSecret)
	query.Add("grant_type", "authorization_code")
	query.Add("code", code)
	query.Add("redirect_uri", twc.redirectURI)
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	return twc.doTokenRequest(req)
}

// TwitchGetUserTokenRefresh trades a refresh token for a fresh pair.
// Twitch may omit refresh_token from the response; the stored one keeps
// working in that case.
func (twc *TwitchOauthClient) TwitchGetUserTokenRefresh(ctx context.Context, token string) (data *models.TwitchOauthGetTokenResponse, err error) {

	if token == "" {
		return nil, errors.New("refresh token is not set")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twc.schemeHost+"/oauth2/token", nil)
	if err != nil {
		return nil, err
	}

	query := req.URL.Query()
	query.Add("client_id", twc.clientID)
	query.Add("client_secret", twc.clientSecret)
	query.Add("grant_type", "refresh_token")
	query.Add("refresh_token", token)
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	data, err = twc.doTokenRequest(req)
	if err != nil {
		return nil, err
	}

	if data.RefreshToken == "" {
		data.RefreshToken = token
	}

	return
}
