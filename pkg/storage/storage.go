// Package storage defines the durable-store seams the reconciliation core
// depends on: a flat settings map, the series-name to image-url cache, and
// the metadata catalog's response cache. Implementations live in sqlite.
package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found in storage")

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_storage.go github.com/dvrz/dvrz/pkg/storage Storage

// Storage composes every durable concern behind one handle.
type Storage interface {
	// Init brings the underlying schema up to date.
	Init(ctx context.Context) error
	SettingStorage
	SeriesImageStorage
	MetadataCacheStorage
}

// SettingStorage is a flat string-keyed settings map, created on first run
// and mutated by the onboarding/settings flow.
type SettingStorage interface {
	// GetSetting returns ErrNotFound when the key has never been written.
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// SeriesImageStorage maps a series display name to its resolved poster URL.
// Lookups trim the name and fall back to a case-insensitive match; rows are
// written opportunistically whenever a show's image is resolved.
type SeriesImageStorage interface {
	GetSeriesImage(ctx context.Context, name string) (string, error)
	SaveSeriesImage(ctx context.Context, name, url string) error
}

// CacheRow is one cached catalog response keyed by endpoint signature.
type CacheRow struct {
	Endpoint  string
	Data      []byte
	UpdatedAt time.Time
}

// MetadataCacheStorage persists catalog responses, one row per distinct
// query. Writes overwrite unconditionally (last write wins).
type MetadataCacheStorage interface {
	GetCacheRow(ctx context.Context, endpoint string) (*CacheRow, error)
	SetCacheRow(ctx context.Context, endpoint string, data []byte, updatedAt time.Time) error
}
