// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"chatweb/cli/internal/router"
	"chatweb/cli/internal/userstore"
)

// homePage shows the session and the cached profile. It never calls the backend.
func homePage(_ context.Context, a *app, _ []string) error {
	st, err := userstore.GetLocalState(a.local)
	if err != nil {
		return fmt.Errorf("read local user state: %w", err)
	}

	pterm.DefaultSection.Println("chatweb")
	if !a.auth.LoggedIn() {
		printNotLoggedIn()
	} else if exp, ok := a.auth.Expiry(); ok {
		pterm.Info.Printf("Logged in (session expires %s)\n", exp.Local().Format(time.DateTime))
	} else {
		pterm.Info.Println("Logged in")
	}
	return renderUserState(st)
}

// serverErrorPage is shown after the backend failed on a logged-in user.
func serverErrorPage(_ context.Context, _ *app, _ []string) error {
	pterm.DefaultSection.Println("500")
	pterm.Error.Println("The chat server ran into a problem.")
	pterm.Println("Please try again in a few minutes. Run 'chatweb' to return home.")
	return nil
}

func renderUserState(st userstore.UserState) error {
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Name", "Plan", "Remaining"},
		{st.UserInfo.Name, st.UserInfo.Type, fmt.Sprint(st.UserInfo.RemainCount)},
	}).Render()
}

func printNotLoggedIn() {
	pterm.Println("🔒 You're not logged in yet!")
	pterm.Println("   Run 'chatweb login' to get started.")
}

var errorCmd = &cobra.Command{
	Use:    "error",
	Short:  "Show the server error page",
	Hidden: true,
	RunE:   page(router.ErrorPath, "showing the error page", serverErrorPage),
}

func init() {
	rootCmd.AddCommand(errorCmd)
}
