package main

import (
	"fmt"
	"twitch_cli/internal/utils/formater"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Fetch an app access token (client credentials grant)",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func runToken(cmd *cobra.Command, args []string) error {

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := newOauthClient(cfg).TwitchOAuthGetToken(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Print(formater.TokenPairText(data))

	return nil
}
