// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"chatweb/cli/internal/userstore"
)

// logoutCmd removes the session token and the cached profile.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session and cached profile",
	Long: `The logout command removes the session token from the OS credential store and
deletes the locally cached profile. The backend keeps no session to invalidate.`,
	RunE: page("/logout", "logging out", logoutPage),
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func logoutPage(_ context.Context, a *app, _ []string) error {
	if err := a.auth.RemoveToken(); err != nil {
		return err
	}
	if err := a.local.Remove(userstore.LocalName); err != nil {
		return err
	}
	pterm.Success.Println("Session and cached profile have been removed")
	return nil
}
