// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package userstore caches the user's profile in local storage so pages can
// render it without a round trip to the backend.
package userstore

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LocalName is the storage key holding the persisted UserState.
const LocalName = "userStorage"

// UserInfo is the persisted profile. Its field names differ from api.UserInfo;
// callers map between the two.
type UserInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	RemainCount int    `json:"remainCount"`
}

// UserState is the value stored under LocalName.
type UserState struct {
	UserInfo UserInfo `json:"userInfo"`
}

// Storage is the key-value primitive the state is kept in.
// Get returns nil for a missing key.
type Storage interface {
	Get(key string) (json.RawMessage, error)
	Set(key string, v any) error
}

// DefaultSetting returns the state used when nothing has been stored yet.
func DefaultSetting() UserState {
	return UserState{
		UserInfo: UserInfo{
			Name:        "User",
			Type:        "Free",
			RemainCount: 5,
		},
	}
}

// GetLocalState returns the stored state laid over DefaultSetting.
//
// The merge is shallow: a stored "userInfo" replaces the default userInfo as a
// whole, so {"userInfo":{"name":"Alice"}} yields Type "" and RemainCount 0
// rather than the defaults.
func GetLocalState(s Storage) (UserState, error) {
	state := DefaultSetting()

	raw, err := s.Get(LocalName)
	if err != nil {
		return UserState{}, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return state, nil
	}

	var stored map[string]json.RawMessage
	if err := json.Unmarshal(raw, &stored); err != nil {
		return UserState{}, fmt.Errorf("decode %s: %w", LocalName, err)
	}
	if info, ok := stored["userInfo"]; ok {
		state.UserInfo = UserInfo{}
		if err := json.Unmarshal(info, &state.UserInfo); err != nil {
			return UserState{}, fmt.Errorf("decode %s.userInfo: %w", LocalName, err)
		}
	}
	return state, nil
}

// SetLocalState overwrites the stored state with st.
func SetLocalState(s Storage, st UserState) error {
	return s.Set(LocalName, st)
}
