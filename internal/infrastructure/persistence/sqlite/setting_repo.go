package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/domain/repository"
	"github.com/bnema/statusbar/internal/logging"
)

type settingRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewSettingRepository creates a new SQLite-backed settings repository.
func NewSettingRepository(db *sql.DB) repository.SettingRepository {
	return &settingRepo{db: db, now: time.Now}
}

func (r *settingRepo) Get(ctx context.Context, name string) (*entity.Setting, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT name, value, updated_at FROM settings WHERE name = ?", name)
	s, err := scanSetting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %q: %w", name, err)
	}
	return s, nil
}

func (r *settingRepo) Set(ctx context.Context, setting *entity.Setting) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("name", setting.Name).Str("value", setting.Value).Msg("setting value")

	if setting.UpdatedAt.IsZero() {
		setting.UpdatedAt = r.now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		setting.Name, setting.Value, setting.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to set setting %q: %w", setting.Name, err)
	}
	return nil
}

func (r *settingRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", name, err)
	}
	return nil
}

func (r *settingRepo) GetAll(ctx context.Context) ([]*entity.Setting, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name, value, updated_at FROM settings ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var settings []*entity.Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSetting(row rowScanner) (*entity.Setting, error) {
	var (
		s       entity.Setting
		value   sql.NullString
		updated int64
	)
	if err := row.Scan(&s.Name, &value, &updated); err != nil {
		return nil, err
	}
	s.Value = value.String
	s.UpdatedAt = time.Unix(updated, 0)
	return &s, nil
}
