package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/contactdesk/backend/internal/domain"
)

// GetSetting returns the setting for the given key, or nil when the key has
// never been set.
func (s *Service) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	setting, err := s.settings.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("record.GetSetting: %w", err)
	}
	return setting, nil
}

// SetSetting upserts a setting: the value of an existing key is updated in
// place (its description preserved), a new key is appended with an empty
// description.
func (s *Service) SetSetting(ctx context.Context, key, value string) (*domain.Setting, error) {
	setting := domain.Setting{Key: key, Value: value}

	existing, err := s.settings.Get(ctx, key)
	switch {
	case err == nil:
		setting.Description = existing.Description
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("record.SetSetting: %w", err)
	}

	if err := s.settings.Save(ctx, setting); err != nil {
		return nil, fmt.Errorf("record.SetSetting: %w", err)
	}

	s.log.InfoContext(ctx, "setting saved", slog.String("key", key))

	return &setting, nil
}
