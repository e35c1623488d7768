// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"chatweb/cli/internal/api"
	apperr "chatweb/cli/internal/errors"
	"chatweb/cli/internal/userstore"
)

// meCmd shows the current account, refreshed from the backend.
var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show current account",
	Long: `The me command fetches your profile from the backend, caches it locally and
prints it. 'chatweb' without arguments shows the cached copy without a request.`,
	RunE: page("/me", "fetching your profile", mePage),
}

var renameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Change your display name",
	Args:  cobra.ExactArgs(1),
	RunE:  page("/rename", "renaming your account", renamePage),
}

func init() {
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(renameCmd)
}

func mePage(ctx context.Context, a *app, _ []string) error {
	if !a.auth.LoggedIn() {
		printNotLoggedIn()
		return nil
	}
	st, err := a.refreshUser(ctx)
	if err != nil {
		return err
	}
	pterm.Println(getMePhrase(st.UserInfo.Name))
	return renderUserState(st)
}

func renamePage(ctx context.Context, a *app, args []string) error {
	if !a.auth.LoggedIn() {
		return apperr.New(apperr.NotLoggedIn, "run 'chatweb login' first")
	}
	name := strings.TrimSpace(args[0])
	if name == "" {
		return apperr.New(apperr.InvalidInput, "name must not be blank")
	}

	err := a.spin("Renaming", func() error {
		_, err := api.UpdateUserInfo[json.RawMessage](ctx, a.client, api.UserUpdateRequest{UserName: name})
		return err
	})
	if err != nil {
		return err
	}

	st, err := userstore.GetLocalState(a.local)
	if err != nil {
		return fmt.Errorf("read local user state: %w", err)
	}
	st.UserInfo.Name = name
	if err := userstore.SetLocalState(a.local, st); err != nil {
		return fmt.Errorf("save local user state: %w", err)
	}
	pterm.Success.Printf("You are now %s\n", name)
	return nil
}

// refreshUser fetches the profile and stores it as the local user state.
func (a *app) refreshUser(ctx context.Context) (userstore.UserState, error) {
	var info api.UserInfo
	err := a.spin("Fetching profile", func() error {
		res, err := api.GetUserInfo[api.UserInfo](ctx, a.client)
		if err != nil {
			return err
		}
		info = res.Data
		return nil
	})
	if err != nil {
		return userstore.UserState{}, err
	}

	st := toLocalState(info)
	if err := userstore.SetLocalState(a.local, st); err != nil {
		return st, fmt.Errorf("save local user state: %w", err)
	}
	return st, nil
}

// cachedName returns the name from the local user state.
func (a *app) cachedName() (string, error) {
	st, err := userstore.GetLocalState(a.local)
	if err != nil {
		return "", err
	}
	return st.UserInfo.Name, nil
}

// toLocalState maps the backend profile onto the persisted shape.
func toLocalState(info api.UserInfo) userstore.UserState {
	return userstore.UserState{UserInfo: userstore.UserInfo{
		Name:        info.UserName,
		Type:        info.UserType,
		RemainCount: info.RemainCount,
	}}
}

func getMePhrase(name string) string {
	return fmt.Sprintf("👤 Current user: %s", name)
}
