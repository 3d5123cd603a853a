package twitch_service

import (
	"context"
	"twitch_cli/internal/models"

	"github.com/pkg/errors"
)

// Probe runs the three Helix calls in sequence: user lookup, follower
// count, stream status. It stops at the first failed call; the report is
// filled as far as the sequence got, rate-limit headers included, so the
// caller can still surface them.
func (tws *TwitchService) Probe(ctx context.Context, token, target string) (*models.ProbeReport, error) {

	report := &models.ProbeReport{}

	user, rl, err := tws.GetUser(ctx, token, target)
	report.UserRateLimit = rl
	if err != nil {
		return report, errors.Wrap(err, "GetUser")
	}
	report.User = *user

	total, rl, err := tws.GetChannelFollowers(ctx, token, user.UserID)
	report.FollowersRateLimit = rl
	if err != nil {
		return report, errors.Wrap(err, "GetChannelFollowers")
	}
	report.FollowerTotal = total

	stream, rl, err := tws.GetActiveStreamInfoByUser(ctx, token, user.UserID)
	report.StreamRateLimit = rl
	if err != nil {
		return report, errors.Wrap(err, "GetActiveStreamInfoByUser")
	}
	report.Stream = stream

	return report, nil
}
