// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the chatweb CLI.
// Every page command (login, me, ...) is a route: it navigates through the
// router before it runs, and a guard may redirect it to another page.
package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	apperr "chatweb/cli/internal/errors"
	"chatweb/cli/internal/logging"
)

var (
	showVersion bool
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands.
// Without flags it renders the home page.
var rootCmd = &cobra.Command{
	Use:   "chatweb",
	Short: "Chatweb account CLI",
	Long: `chatweb manages your chatweb account from the terminal: register with an SMS
code, log in with a captcha, and view or rename your profile.

Settings live in the XDG config dir (see 'chatweb config'); the session token is
kept in your OS credential store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("chatweb %s\n", Version)
			return nil
		}
		return page("/", "loading home", homePage)(cmd, args)
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(logging.PresentError("chatweb", err))
		switch apperr.KindOf(err) {
		case apperr.ConfigInvalid:
			pterm.Println("Check your settings with 'chatweb config show'.")
		case apperr.KeychainUnavailable:
			pterm.Println("Set CHATWEB_KEYRING_BACKEND=file and CHATWEB_KEYRING_PASSPHRASE to use an encrypted file instead.")
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}
