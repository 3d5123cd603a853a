package main

import (
	"fmt"
	"twitch_cli/internal/utils/formater"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe [login|id]",
	Short: "Run the user, followers and stream calls in sequence",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {

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

	report, err := newTwitchService(cfg).Probe(cmd.Context(), token, target)
	if err != nil {
		return err
	}

	fmt.Print(formater.UserText(&report.User))
	fmt.Println(formater.RateLimitText(report.UserRateLimit))

	fmt.Printf("followers: %d\n", report.FollowerTotal)
	fmt.Println(formater.RateLimitText(report.FollowersRateLimit))

	fmt.Print(formater.StreamText(report.Stream))
	fmt.Println(formater.RateLimitText(report.StreamRateLimit))

	return nil
}
