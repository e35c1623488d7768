// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	apperr "chatweb/cli/internal/errors"
)

// askPhone returns flagValue or prompts for a phone number.
func (a *app) askPhone(flagValue string) (string, error) {
	phone := strings.TrimSpace(flagValue)
	if phone == "" {
		var err error
		if phone, err = a.prompt.Line("Phone number: "); err != nil {
			return "", apperr.Wrap(apperr.InvalidInput, "phone number is required", err)
		}
	}
	if err := validatePhone(phone); err != nil {
		return "", err
	}
	return phone, nil
}

// askPassword prompts for a password. confirm asks a second time and
// requires both answers to match.
func (a *app) askPassword(confirm bool) (string, error) {
	pw, err := a.prompt.Password("Password: ")
	if err != nil {
		return "", apperr.Wrap(apperr.InvalidInput, "password is required", err)
	}
	if confirm {
		again, err := a.prompt.Password("Repeat password: ")
		if err != nil {
			return "", apperr.Wrap(apperr.InvalidInput, "password confirmation is required", err)
		}
		if again != pw {
			return "", apperr.New(apperr.InvalidInput, "passwords do not match")
		}
	}
	return pw, nil
}

func validatePhone(phone string) error {
	if len(phone) < 6 || len(phone) > 15 {
		return apperr.New(apperr.InvalidInput, fmt.Sprintf("phone number must have 6 to 15 digits, got %d", len(phone)))
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return apperr.New(apperr.InvalidInput, "phone number must contain digits only")
		}
	}
	return nil
}

// hashPassword returns the lowercase hex MD5 digest the backend expects in
// place of the plain password.
func hashPassword(pw string) string {
	sum := md5.Sum([]byte(pw))
	return hex.EncodeToString(sum[:])
}
