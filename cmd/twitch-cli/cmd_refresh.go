package main

import (
	"fmt"
	"twitch_cli/internal/utils/formater"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the stored user token pair",
	Long:  "Single best-effort refresh call using TWITCH_REFRESH_TOKEN. A failure is final for this invocation; there is no retry.",
	Args:  cobra.NoArgs,
	RunE:  runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.RefreshToken == "" {
		return errors.New("TWITCH_REFRESH_TOKEN is not set")
	}

	data, err := newOauthClient(cfg).TwitchGetUserTokenRefresh(cmd.Context(), cfg.RefreshToken)
	if err != nil {
		return err
	}

	fmt.Print(formater.TokenPairText(data))

	return nil
}
