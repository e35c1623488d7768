// Copyright (c) 2025 Chatweb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package storage provides the CLI's local key-value store: a single JSON
// document on disk mapping keys to values with an optional expiry.
//
// Every call reads or writes the whole file, so concurrent writers from
// separate processes are last-writer-wins.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"chatweb/cli/internal/xdg"
)

// FileName is the document kept in the state directory.
const FileName = "storage.json"

// entry is the on-disk form of a single value.
// Expire is a unix timestamp in milliseconds; nil means the value never expires.
type entry struct {
	Data   json.RawMessage `json:"data"`
	Expire *int64          `json:"expire"`
}

// Local is a file-backed key-value store.
type Local struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// Open returns a store backed by path. The file is created on first write.
func Open(path string) *Local {
	return &Local{path: path, now: time.Now}
}

// OpenDefault returns the store in the XDG state directory.
func OpenDefault() (*Local, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return nil, fmt.Errorf("resolve state dir: %w", err)
	}
	return Open(filepath.Join(dir, FileName)), nil
}

// Path returns the backing file.
func (l *Local) Path() string { return l.path }

// Get returns the raw value stored under key, or nil when the key is absent or expired.
// Expired entries are removed.
func (l *Local) Get(key string) (json.RawMessage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	doc, err := l.load()
	if err != nil {
		return nil, err
	}
	e, ok := doc[key]
	if !ok {
		return nil, nil
	}
	if e.Expire != nil && l.now().UnixMilli() >= *e.Expire {
		delete(doc, key)
		if err := l.save(doc); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return e.Data, nil
}

// Set stores v under key with no expiry, replacing any previous value.
func (l *Local) Set(key string, v any) error {
	return l.set(key, v, nil)
}

// SetWithExpire stores v under key; it is reported absent once ttl has elapsed.
func (l *Local) SetWithExpire(key string, v any, ttl time.Duration) error {
	expire := l.now().Add(ttl).UnixMilli()
	return l.set(key, v, &expire)
}

func (l *Local) set(key string, v any, expire *int64) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	doc, err := l.load()
	if err != nil {
		return err
	}
	doc[key] = entry{Data: data, Expire: expire}
	return l.save(doc)
}

// Remove deletes key. Removing a missing key is not an error.
func (l *Local) Remove(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	doc, err := l.load()
	if err != nil {
		return err
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return l.save(doc)
}

// Clear deletes every key.
func (l *Local) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear storage: %w", err)
	}
	return nil
}

func (l *Local) load() (map[string]entry, error) {
	doc := map[string]entry{}
	b, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("read storage: %w", err)
	}
	if len(b) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}
	return doc, nil
}

// save writes doc atomically with 0600 permissions.
func (l *Local) save(doc map[string]entry) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".storage-*.tmp")
	if err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write storage: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	return nil
}
