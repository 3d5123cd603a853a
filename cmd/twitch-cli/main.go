package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "twitch-cli",
	Short:         "Twitch OAuth helper and Helix probe",
	Long:          "Authorize against the Twitch identity service and issue authenticated Helix API calls. Credentials are read from a dotenv-style secrets file; tokens are printed, never stored.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "f", "", "secrets file path (default $TWITCH_ENV_FILE, then .env)")

	rootCmd.AddCommand(
		loginCmd,
		tokenCmd,
		refreshCmd,
		validateCmd,
		userCmd,
		followersCmd,
		streamCmd,
		probeCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
