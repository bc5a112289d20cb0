package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/dvrz/dvrz/pkg/storage"
	"github.com/dvrz/dvrz/pkg/storage/sqlite/schema/gen/model"
	"github.com/dvrz/dvrz/pkg/storage/sqlite/schema/gen/table"
)

// GetSetting returns the stored value for key or storage.ErrNotFound.
func (s *SQLite) GetSetting(ctx context.Context, key string) (string, error) {
	var row model.Setting
	stmt := table.Setting.
		SELECT(table.Setting.AllColumns).
		FROM(table.Setting).
		WHERE(table.Setting.Key.EQ(sqlite.String(key))).
		LIMIT(1)

	err := stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}

	return row.Value, nil
}

// SetSetting stores value under key, overwriting any previous value.
func (s *SQLite) SetSetting(ctx context.Context, key, value string) error {
	stmt := table.Setting.
		INSERT(table.Setting.AllColumns).
		MODEL(model.Setting{Key: key, Value: value}).
		ON_CONFLICT(table.Setting.Key).
		DO_UPDATE(sqlite.SET(table.Setting.Value.SET(table.Setting.EXCLUDED.Value)))

	if _, err := stmt.ExecContext(ctx, s.db); err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}

	return nil
}
