// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chatweb/cli/internal/api"
	apperr "chatweb/cli/internal/errors"
	"chatweb/cli/internal/terminal"
)

var captchaCmd = &cobra.Command{
	Use:   "captcha",
	Short: "Fetch a captcha image",
	Long: `The captcha command fetches a fresh captcha, saves the image to the state
directory and opens it. Login and SMS requests run this step themselves; the
command is mainly useful to check the backend is reachable.`,
	RunE: page("/captcha", "fetching a captcha", captchaPage),
}

func init() {
	rootCmd.AddCommand(captchaCmd)
}

func captchaPage(ctx context.Context, a *app, _ []string) error {
	pic, path, err := a.fetchCaptcha(ctx)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Captcha saved to %s\n", path)
	pterm.Printf("Session: %s\n", pic.SessionID)
	return nil
}

// fetchCaptcha downloads a captcha, writes its image to the state dir and opens it.
func (a *app) fetchCaptcha(ctx context.Context) (*api.PicCode, string, error) {
	var pic api.PicCode
	err := a.spin("Fetching captcha", func() error {
		res, err := api.GetPicCode[api.PicCode](ctx, a.client)
		if err != nil {
			return err
		}
		pic = res.Data
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	img, ext, err := decodeCaptcha(pic.Base64Data)
	if err != nil {
		return nil, "", err
	}
	path := filepath.Join(a.stateDir, "captcha"+ext)
	if err := os.WriteFile(path, img, 0o600); err != nil {
		return nil, "", fmt.Errorf("save captcha: %w", err)
	}
	a.log.Debug("captcha saved", zap.String("path", path), zap.String("session", pic.SessionID))
	a.openFile(path)
	return &pic, path, nil
}

// solveCaptcha shows a captcha and asks for its text.
// It returns the captcha session id and the answer.
func (a *app) solveCaptcha(ctx context.Context) (string, string, error) {
	pic, path, err := a.fetchCaptcha(ctx)
	if err != nil {
		return "", "", err
	}
	pterm.Info.Printf("Captcha image: %s\n", path)
	const prompt = "Captcha text: "
	code, err := a.prompt.Line(prompt)
	if err != nil {
		return "", "", apperr.Wrap(apperr.InvalidInput, "captcha text is required", err)
	}
	if a.prompt.Interactive() {
		terminal.ClearPreviousLines(len(prompt) + len(code))
	}
	return pic.SessionID, code, nil
}

// decodeCaptcha decodes a base64 image, optionally wrapped in a data URI,
// and returns the bytes with a file extension matching its media type.
func decodeCaptcha(s string) ([]byte, string, error) {
	ext := ".png"
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		meta, data, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(meta, ";base64") {
			return nil, "", errors.New("captcha: unsupported data URI")
		}
		switch strings.TrimSuffix(meta, ";base64") {
		case "image/svg+xml":
			ext = ".svg"
		case "image/jpeg":
			ext = ".jpg"
		case "image/gif":
			ext = ".gif"
		}
		s = data
	}
	if s == "" {
		return nil, "", errors.New("captcha: empty image")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, "", fmt.Errorf("captcha: %w", err)
	}
	return b, ext, nil
}

// openBrowser attempts to open the provided path or URL with the user's default viewer.
// It starts the viewer but does not wait for it to exit.
func openBrowser(target string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		cmd = exec.Command("open", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	_ = cmd.Start()
}
