// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"chatweb/cli/internal/config"
	apperr "chatweb/cli/internal/errors"
)

// configCmd works on the config file directly, without the router or the
// credential store, so a broken configuration can always be repaired.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := config.LoadFile()
		if err != nil {
			return apperr.Wrap(apperr.ConfigInvalid, "cannot read the config file", err)
		}
		effective, loadErr := config.Load()

		data := pterm.TableData{{"Key", "File", "Effective"}}
		for _, row := range [][3]string{
			{"api_base_url", file.APIBaseURL, effective.APIBaseURL},
			{"log_level", file.LogLevel, effective.LogLevel},
			{"timeout", file.Timeout.Std().String(), effective.Timeout.Std().String()},
			{"keyring_backend", orAuto(file.KeyringBackend), orAuto(effective.KeyringBackend)},
		} {
			data = append(data, row[:])
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		if loadErr != nil {
			pterm.Warning.Println(loadErr)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long:  fmt.Sprintf("Change a setting in the config file. Keys: %s.", strings.Join(config.Keys, ", ")),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadFile()
		if err != nil {
			return apperr.Wrap(apperr.ConfigInvalid, "cannot read the config file", err)
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return apperr.Wrap(apperr.InvalidInput, "cannot apply setting", err)
		}
		if err := config.Save(c); err != nil {
			return err
		}
		pterm.Success.Printf("%s updated\n", args[0])
		return nil
	},
}

func orAuto(s string) string {
	if s == "" {
		return "auto"
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
