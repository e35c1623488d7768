// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chatweb/cli/internal/auth"
	"chatweb/cli/internal/config"
	apperr "chatweb/cli/internal/errors"
	"chatweb/cli/internal/httperrors"
	"chatweb/cli/internal/keychain"
	"chatweb/cli/internal/logging"
	"chatweb/cli/internal/request"
	"chatweb/cli/internal/router"
	"chatweb/cli/internal/storage"
	"chatweb/cli/internal/terminal"
	"chatweb/cli/internal/xdg"
)

// app is everything a page needs: settings, auth state, local storage,
// the backend client and the router guarding page transitions.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	auth     *auth.Store
	local    *storage.Local
	client   *request.Client
	router   *router.Router
	prompt   *terminal.Prompter
	stateDir string

	// openFile shows a file (the captcha image) to the user.
	openFile func(path string)
	// spinOut receives spinner frames; nil disables spinners.
	spinOut io.Writer
}

// pageFunc renders one page. It runs only after the router admitted the navigation.
type pageFunc func(ctx context.Context, a *app, args []string) error

// newApp wires the application from configuration. Tests replace it.
var newApp = func(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, apperr.Wrap(apperr.ConfigInvalid, "cannot load configuration (see 'chatweb config show')", err)
	}
	log := logging.New(cfg.LogLevel, verbose)

	stateDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	keys, err := keychain.New(keychain.Options{
		Backend:        cfg.KeyringBackend,
		FileDir:        filepath.Join(stateDir, "keyring"),
		FilePassphrase: cfg.KeyringPassphrase,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KeychainUnavailable, "cannot open the credential store", err)
	}
	store, err := auth.NewStore(keys)
	if err != nil {
		return nil, apperr.Wrap(apperr.KeychainUnavailable, "cannot read the saved session", err)
	}

	a := build(cfg, log, store, storage.Open(filepath.Join(stateDir, storage.FileName)), stateDir)
	a.prompt = terminal.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	a.openFile = openBrowser
	if a.prompt.Interactive() {
		a.spinOut = os.Stderr
	}
	return a, nil
}

// build assembles an app from its parts and registers the page guard.
func build(cfg config.Config, log *zap.Logger, store *auth.Store, local *storage.Local, stateDir string) *app {
	a := &app{
		cfg:      cfg,
		log:      log,
		auth:     store,
		local:    local,
		stateDir: stateDir,
		openFile: func(string) {},
	}
	a.client = request.NewClient(cfg.APIBaseURL, cfg.Timeout.Std(),
		request.WithTokenSource(store),
		request.WithLogger(log),
		request.WithOnUnauthorized(a.onUnauthorized),
	)
	a.router = router.New(routes...)
	router.SetupPageGuard(a.router, store)
	return a
}

// onUnauthorized drops a token the backend no longer accepts.
func (a *app) onUnauthorized() {
	if err := a.auth.RemoveToken(); err != nil {
		a.log.Warn("failed to clear rejected token", zap.Error(err))
	}
}

// page adapts a pageFunc into a cobra RunE that navigates to path first.
// action describes the page in error messages ("logging in").
func page(path, action string, run pageFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.log.Sync() }()

		return a.visit(cmd.Context(), path, action, func(ctx context.Context) error {
			return run(ctx, a, args)
		})
	}
}

// visit navigates to path and runs the page. A redirect renders the target
// page instead. Server failures send the user to the error page.
func (a *app) visit(ctx context.Context, path, action string, run func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	to, err := a.router.Push(ctx, path)
	if err != nil {
		return err
	}
	if to.Path != path {
		a.log.Debug("navigation redirected", zap.String("from", path), zap.String("to", to.Path))
		return a.render(ctx, to)
	}
	return a.handle(ctx, action, run(ctx))
}

func (a *app) handle(ctx context.Context, action string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, request.ErrUnauthorized):
		pterm.Warning.Println("Your session has expired. Run 'chatweb login' to sign in again.")
		return err
	case request.IsServerError(err):
		a.log.Warn("server error", zap.String("action", action), zap.Error(err))
		to, navErr := a.router.Push(ctx, router.ErrorPath)
		if navErr != nil {
			return navErr
		}
		if renderErr := a.render(ctx, to); renderErr != nil {
			return renderErr
		}
		return err
	}

	var ue *url.Error
	if errors.As(err, &ue) {
		return httperrors.FormatNetworkError(err, action, httperrors.ExtractHostFromURL(a.cfg.APIBaseURL))
	}
	return err
}

// render shows the page for a route reached by redirect.
func (a *app) render(ctx context.Context, to router.Route) error {
	switch to.Name {
	case routeServerError:
		return serverErrorPage(ctx, a, nil)
	default:
		return homePage(ctx, a, nil)
	}
}
