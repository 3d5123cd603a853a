package twitch_client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"twitch_cli/internal/models"

	jsoniter "github.com/json-iterator/go"
)

// GetChannelFollowers fetches the follower total of a broadcaster. The
// token must be user-scoped with moderator:read:followers, otherwise only
// the total field is populated by Twitch.
func (twc *TwitchClient) GetChannelFollowers(ctx context.Context, token, broadcasterID string) (data *models.GetChannelFollowersResponse, rl models.RateLimit, err error) {

	client := newHTTPClient()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twc.apiSchemeHost+"/helix/channels/followers", nil)
	if err != nil {
		return
	}

	query := req.URL.Query()
	query.Add("broadcaster_id", broadcasterID)
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

	var followersInfo models.GetChannelFollowersResponse
	err = jsoniter.Unmarshal(readedResp, &followersInfo)
	if err != nil {
		return
	}

	data = &followersInfo

	return
}
