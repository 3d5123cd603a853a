package twitch_client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"twitch_cli/internal/models"

	jsoniter "github.com/json-iterator/go"
)

// GetActiveStreamInfoByUsers fetches live-stream info for the given ids or
// logins. An offline channel simply does not appear in the data list.
func (twc *TwitchClient) GetActiveStreamInfoByUsers(ctx context.Context, token string, ids []string) (data *models.Streams, rl models.RateLimit, err error) {

	client := newHTTPClient()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twc.apiSchemeHost+"/helix/streams", nil)
	if err != nil {
		return
	}

	query := req.URL.Query()
	for _, id := range ids {
		if digitCheck.MatchString(id) {
			query.Add("user_id", id)
			continue
		}
		query.Add("user_login", id)
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

	var streamsInfo models.Streams
	err = jsoniter.Unmarshal(readedResp, &streamsInfo)
	if err != nil {
		return
	}

	data = &streamsInfo

	return
}
