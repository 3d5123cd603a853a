package twitch_service

import (
	"context"
	"twitch_cli/internal/models"

	"github.com/pkg/errors"
)

func (tws *TwitchService) GetChannelFollowers(ctx context.Context, token, broadcasterID string) (uint64, models.RateLimit, error) {

	followersInfo, rl, err := tws.twitchClient.GetChannelFollowers(ctx, token, broadcasterID)
	if err != nil {
		return 0, rl, err
	}

	if followersInfo == nil {
		return 0, rl, errors.New("empty response struct")
	}

	return followersInfo.Total, rl, nil
}
