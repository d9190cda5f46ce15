// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the client's storage capability for non-secret session
// metadata: who is logged in, the bearer credential and the encryption salt.
// Key material never reaches this package.
//
// [Storage] is a small get/set/remove interface with three implementations:
// sqlite (goose-migrated, squirrel queries), an in-memory map, and a no-op
// store for headless contexts where nothing may be persisted. [SessionStore]
// layers typed accessors on top.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/storage_mock.go -package=mock

// Storage persists string values under string keys.
type Storage interface {
	// Get returns the value stored under key or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
