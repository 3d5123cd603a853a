package main

import (
	"fmt"
	"twitch_cli/internal/utils/formater"

	"github.com/spf13/cobra"
)

var followersCmd = &cobra.Command{
	Use:   "followers [login|id]",
	Short: "Show the follower count of a channel",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFollowers,
}

func runFollowers(cmd *cobra.Command, args []string) error {

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token, err := requireAccessToken(cfg)
	if err != nil {
		return err
	}

	target, err := resolveTarget(cfg, args)
	if err != nil {
		return err
	}

	tws := newTwitchService(cfg)

	user, _, err := tws.GetUser(cmd.Context(), token, target)
	if err != nil {
		return err
	}

	total, rl, err := tws.GetChannelFollowers(cmd.Context(), token, user.UserID)
	fmt.Println(formater.RateLimitText(rl))
	if err != nil {
		return err
	}

	fmt.Printf("%s has %d followers\n", user.DisplayName, total)

	return nil
}
