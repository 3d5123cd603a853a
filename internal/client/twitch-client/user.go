package twitch_client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"twitch_cli/internal/models"

	jsoniter "github.com/json-iterator/go"
)

// GetUserInfo looks up users by id or login; a purely numeric value is
// treated as an id. The request does not fail for unknown users, the data
// list is just shorter.
func (twc *TwitchClient) GetUserInfo(ctx context.Context, token string, ids []string) (data *models.GetUserInfoResponse, rl models.RateLimit, err error) {

	client := newHTTPClient()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twc.apiSchemeHost+"/helix/users", nil)
	if err != nil {
		return
	}

	query := req.URL.Query()
	for _, id := range ids {
		if digitCheck.MatchString(id) {
			query.Add("id", id)
			continue
		}
		query.Add("login", id)
	}
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Client-Id", twc.clientID)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := client.Do(req)
	if err != nil {
		return
	}

	defer resp.Body.Close()

	rl = readRateLimit(resp.Header)

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}

	if resp.StatusCode != http.StatusOK {
		return nil, rl, helixError(resp.StatusCode, readedResp)
	}

	var usersInfo models.GetUserInfoResponse
	err = jsoniter.Unmarshal(readedResp, &usersInfo)
	if err != nil {
		return
	}

	data = &usersInfo

	return
}
