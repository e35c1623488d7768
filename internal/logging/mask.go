// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging builds the CLI logger and masks secrets before they reach it.
//
// Request bodies sent to the user service carry passwords, SMS and captcha
// codes, and responses carry access tokens. Mask must be applied to anything
// derived from them before it is logged or shown to the user.
package logging

import (
	"regexp"
)

var (
	rePassword  = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reToken     = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reJSONKey   = regexp.MustCompile(`(?i)("(?:password|token|accessToken|smsVerifyCode|captchaVerifyCode)"\s*:\s*)"[^"]*"`)
	reJSONPhone = regexp.MustCompile(`(?i)("phoneNumber"\s*:\s*")([^"]*)"`)
	rePhone     = regexp.MustCompile(`\b\d{8,15}\b`)
)

// Mask replaces sensitive values in the input string with "***".
// Phone numbers keep their first three and last four digits.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reJSONKey.ReplaceAllString(out, `$1"***"`)
	out = reJSONPhone.ReplaceAllStringFunc(out, func(m string) string {
		sub := reJSONPhone.FindStringSubmatch(m)
		return sub[1] + MaskPhone(sub[2]) + `"`
	})
	out = rePhone.ReplaceAllStringFunc(out, MaskPhone)
	return out
}

// MaskPhone hides the middle of a phone number. Numbers shorter than eight
// characters are hidden entirely.
func MaskPhone(phone string) string {
	if len(phone) < 8 {
		return "***"
	}
	return phone[:3] + "****" + phone[len(phone)-4:]
}
