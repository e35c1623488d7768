// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import "chatweb/cli/internal/router"

// Route names. Root and the server error page are the only redirect targets.
const (
	routeServerError = "ServerError"
	routeCaptcha     = "Captcha"
	routeSms         = "Sms"
	routeRegister    = "Register"
	routeLogin       = "Login"
	routeMe          = "Me"
	routeRename      = "Rename"
	routeLogout      = "Logout"
)

var routes = []router.Route{
	{Name: router.RootName, Path: router.RootPath},
	{Name: routeServerError, Path: router.ErrorPath},
	{Name: routeCaptcha, Path: "/captcha"},
	{Name: routeSms, Path: "/sms"},
	{Name: routeRegister, Path: "/register"},
	{Name: routeLogin, Path: "/login"},
	{Name: routeMe, Path: "/me"},
	{Name: routeRename, Path: "/rename"},
	{Name: routeLogout, Path: "/logout"},
}
