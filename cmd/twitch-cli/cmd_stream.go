package main

import (
	"fmt"
	"twitch_cli/internal/utils/formater"

	"github.com/spf13/cobra"
)

var streamCmd = &cobra.Command{
	Use:   "stream [login|id]",
	Short: "Show the live-stream status of a channel",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStream,
}

func runStream(cmd *cobra.Command, args []string) error {

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

	stream, rl, err := newTwitchService(cfg).GetActiveStreamInfoByUser(cmd.Context(), token, target)
	fmt.Println(formater.RateLimitText(rl))
	if err != nil {
		return err
	}

	fmt.Print(formater.StreamText(stream))

	return nil
}
