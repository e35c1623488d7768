// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"chatweb/cli/internal/api"
	"chatweb/cli/internal/logging"
)

var smsPhone string

var smsCmd = &cobra.Command{
	Use:   "sms",
	Short: "Send an SMS verification code",
	Long: `The sms command solves a captcha and asks the backend to text a verification
code to your phone. Use the code with 'chatweb register'.`,
	RunE: page("/sms", "requesting an SMS code", smsPage),
}

func init() {
	rootCmd.AddCommand(smsCmd)
	smsCmd.Flags().StringVar(&smsPhone, "phone", "", "Phone number to send the code to")
}

func smsPage(ctx context.Context, a *app, _ []string) error {
	phone, err := a.askPhone(smsPhone)
	if err != nil {
		return err
	}
	if err := a.sendSmsCode(ctx, phone); err != nil {
		return err
	}
	pterm.Success.Printf("Verification code sent to %s\n", logging.MaskPhone(phone))
	return nil
}

// sendSmsCode runs a captcha round and requests an SMS code for phone.
func (a *app) sendSmsCode(ctx context.Context, phone string) error {
	session, code, err := a.solveCaptcha(ctx)
	if err != nil {
		return err
	}
	return a.spin("Sending code", func() error {
		_, err := api.GetSmsCode[json.RawMessage](ctx, a.client, api.SmsCodeRequest{
			PhoneNumber:       phone,
			CaptchaSessionID:  session,
			CaptchaVerifyCode: code,
		})
		return err
	})
}
