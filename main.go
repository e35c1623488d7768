// Package main is the entry point for the chatweb CLI.
package main

import (
	"chatweb/cli/cmd"
)

func main() {
	cmd.Execute()
}
