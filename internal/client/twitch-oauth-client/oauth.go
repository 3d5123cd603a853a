package twitch_oauth_client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"twitch_cli/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// TokenInvalid marks a token the validation endpoint rejected; callers
// compare against it to tell "expired" from transport failures.
const TokenInvalid string = "token invalid"

// TwitchOAuthGetToken performs the client_credentials grant and returns an
// app access token with no user context.
func (twc *TwitchOauthClient) TwitchOAuthGetToken(ctx context.Context) (data *models.TwitchOauthGetTokenResponse, err error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twc.schemeHost+"/oauth2/token", nil)
	if err != nil {
		return nil, err
	}

	query := req.URL.Query()
	query.Add("client_id", twc.clientID)
	query.Add("client_secret", twc.clientSecret)
	query.Add("grant_type", "client_credentials")
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	return twc.doTokenRequest(req)
}

// TwitchOAuthValidateToken asks the identity service whether a token is
// still good. Any non-2xx answer means invalid or expired; no further
// detail is extracted.
func (twc *TwitchOauthClient) TwitchOAuthValidateToken(ctx context.Context, token string) (data *models.TwitchOauthValidateTokenResponse, err error) {

	client := newHTTPClient()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twc.schemeHost+"/oauth2/validate", nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Authorization", fmt.Sprintf("OAuth %s", token))

	resp, err := client.Do(req)
	if err != nil {
		return
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(TokenInvalid)
	}

	var validateTokenInfo models.TwitchOauthValidateTokenResponse
	err = jsoniter.Unmarshal(readedResp, &validateTokenInfo)
	if err != nil {
		return
	}

	data = &validateTokenInfo

	return
}

// doTokenRequest runs a token-endpoint request and decodes the token pair.
// Any response without an access_token field is a failure, with the raw
// response body surfaced verbatim as the error detail.
func (twc *TwitchOauthClient) doTokenRequest(req *http.Request) (data *models.TwitchOauthGetTokenResponse, err error) {

	client := newHTTPClient()

	resp, err := client.Do(req)
	if err != nil {
		return
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}

	var tokenInfo models.TwitchOauthGetTokenResponse
	err = jsoniter.Unmarshal(readedResp, &tokenInfo)
	if err != nil || tokenInfo.AccessToken == "" {
		return nil, errors.New(string(readedResp))
	}

	data = &tokenInfo

	return
}
