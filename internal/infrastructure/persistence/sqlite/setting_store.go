package sqlite

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/bnema/statusbar/internal/domain/entity"
	"github.com/bnema/statusbar/internal/domain/repository"
)

// SettingStore is a snapshot of the settings table serving synchronous
// lookups. It implements port.PreferenceStore; Reload picks up writes made by
// other processes.
type SettingStore struct {
	repo repository.SettingRepository

	mu     sync.RWMutex
	values map[string]string
}

// NewSettingStore loads every setting from repo.
func NewSettingStore(ctx context.Context, repo repository.SettingRepository) (*SettingStore, error) {
	s := &SettingStore{repo: repo}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the snapshot with the table contents.
func (s *SettingStore) Reload(ctx context.Context) error {
	_, err := s.Refresh(ctx)
	return err
}

// Refresh is Reload that also reports whether the snapshot changed.
func (s *SettingStore) Refresh(ctx context.Context) (bool, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}
	values := make(map[string]string, len(all))
	for _, setting := range all {
		values[setting.Name] = setting.Value
	}

	s.mu.Lock()
	changed := !maps.Equal(s.values, values)
	s.values = values
	s.mu.Unlock()
	return changed, nil
}

// Lookup implements port.PreferenceStore.
func (s *SettingStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Put writes a setting through to the table.
func (s *SettingStore) Put(ctx context.Context, name, value string) error {
	if err := s.repo.Set(ctx, &entity.Setting{Name: name, Value: value}); err != nil {
		return err
	}
	s.mu.Lock()
	s.values[name] = value
	s.mu.Unlock()
	return nil
}

// Remove deletes a setting.
func (s *SettingStore) Remove(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.values, name)
	s.mu.Unlock()
	return nil
}
