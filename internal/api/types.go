// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

// PicCode is a captcha image and the session it belongs to.
type PicCode struct {
	// Base64Data is the captcha image, base64 encoded (optionally as a data URI).
	Base64Data string `json:"base64Data"`
	// SessionID is echoed back when requesting an SMS code or logging in.
	SessionID string `json:"sessionId"`
}

// SmsCodeRequest proves a captcha was solved before an SMS code is issued.
type SmsCodeRequest struct {
	PhoneNumber       string `json:"phoneNumber"`
	CaptchaSessionID  string `json:"captchaSessionId"`
	CaptchaVerifyCode string `json:"captchaVerifyCode"`
}

// RegisterRequest creates an account. Password must already be hashed.
type RegisterRequest struct {
	PhoneNumber   string `json:"phoneNumber"`
	SmsVerifyCode string `json:"smsVerifyCode"`
	Password      string `json:"password"`
}

// LoginRequest requires a fresh captcha solve. Password must already be hashed.
type LoginRequest struct {
	PhoneNumber       string `json:"phoneNumber"`
	CaptchaSessionID  string `json:"captchaSessionId"`
	CaptchaVerifyCode string `json:"captchaVerifyCode"`
	Password          string `json:"password"`
}

// UserInfo is the server's view of the current user.
type UserInfo struct {
	UserName    string `json:"userName"`
	RemainCount int    `json:"remainCount"`
	UserType    string `json:"userType"`
}

// UserUpdateRequest renames the current user.
type UserUpdateRequest struct {
	UserName string `json:"userName"`
}
