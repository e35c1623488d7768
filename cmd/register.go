// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"chatweb/cli/internal/api"
	apperr "chatweb/cli/internal/errors"
)

var (
	registerPhone   string
	registerSmsCode string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `The register command creates an account for a phone number. Without
--sms-code it first sends a verification code (captcha included) and then asks
for it. The password is prompted without echo and never sent in plain text.`,
	RunE: page("/register", "registering", registerPage),
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number for the new account")
	registerCmd.Flags().StringVar(&registerSmsCode, "sms-code", "", "Verification code received by SMS")
}

func registerPage(ctx context.Context, a *app, _ []string) error {
	phone, err := a.askPhone(registerPhone)
	if err != nil {
		return err
	}

	smsCode := strings.TrimSpace(registerSmsCode)
	if smsCode == "" {
		if err := a.sendSmsCode(ctx, phone); err != nil {
			return err
		}
		if smsCode, err = a.prompt.Line("SMS code: "); err != nil {
			return apperr.Wrap(apperr.InvalidInput, "SMS code is required", err)
		}
	}

	pw, err := a.askPassword(true)
	if err != nil {
		return err
	}

	err = a.spin("Creating account", func() error {
		_, err := api.RegisterUser[json.RawMessage](ctx, a.client, api.RegisterRequest{
			PhoneNumber:   phone,
			SmsVerifyCode: smsCode,
			Password:      hashPassword(pw),
		})
		return err
	})
	if err != nil {
		return err
	}

	pterm.Success.Println("Account created. Run 'chatweb login' to sign in.")
	return nil
}
