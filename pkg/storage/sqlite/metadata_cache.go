package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/dvrz/dvrz/pkg/storage"
	"github.com/dvrz/dvrz/pkg/storage/sqlite/schema/gen/model"
	"github.com/dvrz/dvrz/pkg/storage/sqlite/schema/gen/table"
)

// GetCacheRow returns the cached catalog payload for an endpoint signature,
// or storage.ErrNotFound. Staleness is the caller's concern; expired rows
// are still returned so reads can degrade to stale data.
func (s *SQLite) GetCacheRow(ctx context.Context, endpoint string) (*storage.CacheRow, error) {
	var row model.TvmazeCache
	stmt := table.TvmazeCache.
		SELECT(table.TvmazeCache.AllColumns).
		FROM(table.TvmazeCache).
		WHERE(table.TvmazeCache.Endpoint.EQ(sqlite.String(endpoint))).
		LIMIT(1)

	err := stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cache row %q: %w", endpoint, err)
	}

	return &storage.CacheRow{
		Endpoint:  row.Endpoint,
		Data:      []byte(row.Data),
		UpdatedAt: time.UnixMilli(row.UpdatedAt),
	}, nil
}

// SetCacheRow stores the payload for an endpoint signature, unconditionally
// overwriting any prior row.
func (s *SQLite) SetCacheRow(ctx context.Context, endpoint string, data []byte, updatedAt time.Time) error {
	stmt := table.TvmazeCache.
		INSERT(table.TvmazeCache.AllColumns).
		MODEL(model.TvmazeCache{
			Endpoint:  endpoint,
			Data:      string(data),
			UpdatedAt: updatedAt.UnixMilli(),
		}).
		ON_CONFLICT(table.TvmazeCache.Endpoint).
		DO_UPDATE(sqlite.SET(
			table.TvmazeCache.Data.SET(table.TvmazeCache.EXCLUDED.Data),
			table.TvmazeCache.UpdatedAt.SET(table.TvmazeCache.EXCLUDED.UpdatedAt),
		))

	if _, err := stmt.ExecContext(ctx, s.db); err != nil {
		return fmt.Errorf("failed to set cache row %q: %w", endpoint, err)
	}

	return nil
}
