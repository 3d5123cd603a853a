package main

import (
	"fmt"
	"os"
	"os/signal"
	"twitch_cli/internal/models"
	"twitch_cli/internal/utils/formater"

	twitch_user_authorization "twitch_cli/internal/service/twitch-user-authorization"

	"github.com/spf13/cobra"
)

var loginScopes []string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize via browser and print a user token pair",
	Long:  "Prints the authorization URL, waits for the OAuth redirect on the local callback listener, exchanges the code for a user token pair and prints it. Copy the printed lines into the secrets file.",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringSliceVar(&loginScopes,
		"scopes",
		[]string{string(models.UserReadFollows), string(models.ModeratorReadFollows)},
		"OAuth scopes to request")
}

func runLogin(cmd *cobra.Command, args []string) error {

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tuas, err := twitch_user_authorization.NewTwitchUserAuthorizationService(newOauthClient(cfg), cfg.RedirectAddr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	scopes := make([]models.Scope, 0, len(loginScopes))
	for _, scope := range loginScopes {
		scopes = append(scopes, models.Scope(scope))
	}

	fmt.Println("Open this URL in a browser to authorize:")
	fmt.Println(tuas.TwitchCreateOAuth2Link(ctx, scopes))

	data, err := tuas.AwaitUserTokens(ctx)
	if err != nil {
		return err
	}

	fmt.Print(formater.TokenPairText(data))

	return nil
}
