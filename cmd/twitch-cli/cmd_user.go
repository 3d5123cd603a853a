package main

import (
	"fmt"
	"twitch_cli/internal/utils/formater"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user [login|id]",
	Short: "Look up a Twitch user",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUser,
}

func runUser(cmd *cobra.Command, args []string) error {

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

	user, rl, err := newTwitchService(cfg).GetUser(cmd.Context(), token, target)
	fmt.Println(formater.RateLimitText(rl))
	if err != nil {
		return err
	}

	fmt.Print(formater.UserText(user))

	return nil
}
