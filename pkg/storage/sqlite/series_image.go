package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/dvrz/dvrz/pkg/storage"
	"github.com/dvrz/dvrz/pkg/storage/sqlite/schema/gen/model"
	"github.com/dvrz/dvrz/pkg/storage/sqlite/schema/gen/table"
)

// GetSeriesImage returns the cached poster URL for a series display name.
// The name is trimmed and matched exactly first, then case-insensitively,
// so differently-cased titles from independent sources still hit.
func (s *SQLite) GetSeriesImage(ctx context.Context, name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	var row model.SeriesImage
	stmt := table.SeriesImage.
		SELECT(table.SeriesImage.AllColumns).
		FROM(table.SeriesImage).
		WHERE(table.SeriesImage.Name.EQ(sqlite.String(trimmed))).
		LIMIT(1)

	err := stmt.QueryContext(ctx, s.db, &row)
	if err == nil {
		return row.ImageURL, nil
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return "", fmt.Errorf("failed to get series image for %q: %w", name, err)
	}

	stmt = table.SeriesImage.
		SELECT(table.SeriesImage.AllColumns).
		FROM(table.SeriesImage).
		WHERE(sqlite.LOWER(table.SeriesImage.Name).EQ(sqlite.LOWER(sqlite.String(trimmed)))).
		LIMIT(1)

	err = stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("failed to get series image for %q: %w", name, err)
	}

	return row.ImageURL, nil
}

// SaveSeriesImage stores url under the trimmed series name, overwriting any
// previous row.
func (s *SQLite) SaveSeriesImage(ctx context.Context, name, url string) error {
	stmt := table.SeriesImage.
		INSERT(table.SeriesImage.AllColumns).
		MODEL(model.SeriesImage{Name: strings.TrimSpace(name), ImageURL: url}).
		ON_CONFLICT(table.SeriesImage.Name).
		DO_UPDATE(sqlite.SET(table.SeriesImage.ImageURL.SET(table.SeriesImage.EXCLUDED.ImageURL)))

	if _, err := stmt.ExecContext(ctx, s.db); err != nil {
		return fmt.Errorf("failed to save series image for %q: %w", name, err)
	}

	return nil
}
