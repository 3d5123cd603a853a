package twitch_service

import (
	"context"
	"twitch_cli/internal/models"
)

// GetActiveStreamInfoByUser reports the live stream of a channel; a nil
// stream with a nil error means the channel is offline.
func (tws *TwitchService) GetActiveStreamInfoByUser(ctx context.Context, token, id string) (*models.Stream, models.RateLimit, error) {

	streamInfo, rl, err := tws.twitchClient.GetActiveStreamInfoByUsers(ctx, token, []string{id})
	if err != nil {
		return nil, rl, err
	}

	if streamInfo == nil || len(streamInfo.StreamInfo) < 1 {
		return nil, rl, nil
	}

	return &streamInfo.StreamInfo[0], rl, nil
}
