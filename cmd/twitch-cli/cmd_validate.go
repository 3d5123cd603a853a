package main

import (
	"fmt"
	"twitch_cli/internal/utils/formater"

	twitch_oauth_client "twitch_cli/internal/client/twitch-oauth-client"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the stored access token",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token, err := requireAccessToken(cfg)
	if err != nil {
		return err
	}

	data, err := newOauthClient(cfg).TwitchOAuthValidateToken(cmd.Context(), token)
	if err != nil {
		if err.Error() == twitch_oauth_client.TokenInvalid {
			fmt.Println("token is invalid or expired")
			return nil
		}
		return err
	}

	fmt.Print(formater.ValidateTokenText(data))

	return nil
}
