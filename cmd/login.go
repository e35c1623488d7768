// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"chatweb/cli/internal/api"
)

var loginPhone string

// loginCmd signs in with phone number, password and a solved captcha.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Log in with phone number and password",
	Long: `The login command shows a captcha, asks for your password and exchanges them
for a session token, which is stored in your OS credential store. Your profile is
then fetched and cached locally.

If already logged in, the command does nothing; run 'chatweb logout' first to
switch accounts.`,
	RunE: page("/login", "logging in", loginPage),
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "Phone number of the account")
}

func loginPage(ctx context.Context, a *app, _ []string) error {
	if a.auth.LoggedIn() {
		if name, err := a.cachedName(); err == nil {
			pterm.Printf("Already logged in as %s\n", name)
			return nil
		}
		pterm.Println("Already logged in")
		return nil
	}

	phone, err := a.askPhone(loginPhone)
	if err != nil {
		return err
	}
	session, code, err := a.solveCaptcha(ctx)
	if err != nil {
		return err
	}
	pw, err := a.askPassword(false)
	if err != nil {
		return err
	}

	var data json.RawMessage
	err = a.spin("Logging in", func() error {
		res, err := api.LoginUser[json.RawMessage](ctx, a.client, api.LoginRequest{
			PhoneNumber:       phone,
			CaptchaSessionID:  session,
			CaptchaVerifyCode: code,
			Password:          hashPassword(pw),
		})
		if err != nil {
			return err
		}
		data = res.Data
		return nil
	})
	if err != nil {
		return err
	}

	token := extractToken(data)
	if token == "" {
		return errors.New("login succeeded but the response carried no token")
	}
	if err := a.auth.SetToken(token); err != nil {
		return err
	}

	st, err := a.refreshUser(ctx)
	if err != nil {
		// The session is valid even if the profile could not be fetched.
		a.log.Warn("failed to fetch profile after login", zap.Error(err))
		pterm.Success.Println("Login successful!")
		return nil
	}
	pterm.Success.Println(getRandomLoginGreeting(st.UserInfo.Name))
	return nil
}

// extractToken finds the session token in a login response. The backend
// returns it either as the data itself or under a token field.
func extractToken(data json.RawMessage) string {
	r := gjson.ParseBytes(data)
	if r.Type == gjson.String {
		return r.String()
	}
	for _, path := range []string{"token", "accessToken", "access_token"} {
		if v := r.Get(path); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// getRandomLoginGreeting returns a random greeting phrase with the user's name.
func getRandomLoginGreeting(name string) string {
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"🚀 You're all set, %s!",
		"👋 Hello %s! Ready to chat?",
		"🔓 Access granted! Welcome %s!",
	}
	return fmt.Sprintf(greetings[rand.Intn(len(greetings))], name)
}
