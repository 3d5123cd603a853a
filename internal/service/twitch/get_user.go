package twitch_service

import (
	"context"
	"twitch_cli/internal/models"

	"github.com/pkg/errors"
)

func (tws *TwitchService) GetUser(ctx context.Context, token, id string) (*models.TwitchUserInfo, models.RateLimit, error) {

	userInfo, rl, err := tws.twitchClient.GetUserInfo(ctx, token, []string{id})
	if err != nil {
		return nil, rl, err
	}

	if userInfo == nil || len(userInfo.Data) < 1 {
		return nil, rl, errors.Errorf("user %s not found", id)
	}

	return &userInfo.Data[0], rl, nil
}
