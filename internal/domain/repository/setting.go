// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/statusbar/internal/domain/entity"
)

// SettingRepository defines operations on the host settings table.
type SettingRepository interface {
	// Get retrieves a setting. Returns nil if the key is not set.
	Get(ctx context.Context, name string) (*entity.Setting, error)

	// Set saves or updates a setting.
	Set(ctx context.Context, setting *entity.Setting) error

	// Delete removes a setting.
	Delete(ctx context.Context, name string) error

	// GetAll retrieves every setting ordered by name.
	GetAll(ctx context.Context) ([]*entity.Setting, error)
}
