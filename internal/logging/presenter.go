// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
)

// PresentError formats an error for user display with masking.
func PresentError(action string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", action, Mask(err.Error()))
}
