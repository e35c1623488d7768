// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api builds the user-service requests of the chatweb backend.
// Each function performs exactly one call through the supplied Requester and
// decodes the envelope data into the caller's T. Transport failures are
// returned unchanged; nothing is retried or cached.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"chatweb/cli/internal/request"
)

// Endpoint paths.
const (
	PathCaptcha  = "/user/captcha"
	PathSmsCode  = "/user/smscode"
	PathRegister = "/user/register"
	PathLogin    = "/user/login"
	PathInfo     = "/user/info"
)

// GetPicCode fetches a captcha image. Typically T is PicCode.
func GetPicCode[T any](ctx context.Context, r request.Requester) (*request.Response[T], error) {
	return get[T](ctx, r, PathCaptcha)
}

// GetSmsCode asks the backend to text a verification code to the phone number.
func GetSmsCode[T any](ctx context.Context, r request.Requester, data SmsCodeRequest) (*request.Response[T], error) {
	return post[T](ctx, r, PathSmsCode, data)
}

// RegisterUser creates an account.
func RegisterUser[T any](ctx context.Context, r request.Requester, data RegisterRequest) (*request.Response[T], error) {
	return post[T](ctx, r, PathRegister, data)
}

// LoginUser exchanges credentials and a solved captcha for a session.
func LoginUser[T any](ctx context.Context, r request.Requester, data LoginRequest) (*request.Response[T], error) {
	return post[T](ctx, r, PathLogin, data)
}

// GetUserInfo fetches the current user's profile. Typically T is UserInfo.
func GetUserInfo[T any](ctx context.Context, r request.Requester) (*request.Response[T], error) {
	return get[T](ctx, r, PathInfo)
}

// UpdateUserInfo renames the current user. It shares its path with GetUserInfo.
func UpdateUserInfo[T any](ctx context.Context, r request.Requester, data UserUpdateRequest) (*request.Response[T], error) {
	return post[T](ctx, r, PathInfo, data)
}

func get[T any](ctx context.Context, r request.Requester, url string) (*request.Response[T], error) {
	return do[T](ctx, r, request.Request{Method: http.MethodGet, URL: url})
}

func post[T any](ctx context.Context, r request.Requester, url string, data any) (*request.Response[T], error) {
	return do[T](ctx, r, request.Request{Method: http.MethodPost, URL: url, Data: data})
}

func do[T any](ctx context.Context, r request.Requester, req request.Request) (*request.Response[T], error) {
	env, err := r.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return decode[T](env)
}

// decode converts the raw envelope data into T. Missing or null data yields the zero T.
func decode[T any](env *request.Envelope) (*request.Response[T], error) {
	out := &request.Response[T]{Message: env.Message, Status: env.Status}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out.Data); err != nil {
		return nil, fmt.Errorf("decode %T: %w", out.Data, err)
	}
	return out, nil
}
