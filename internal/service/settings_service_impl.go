package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/pomo/internal/db"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	uow      db.UnitOfWork
}

func NewSettingsService(settings repository.SettingsRepo, uow db.UnitOfWork) SettingsService {
	return &settingsService{settings: settings, uow: uow}
}

// Get returns the user's saved settings, falling back to the defaults for a
// user who has never saved any. Missing settings are not an error.
func (s *settingsService) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	saved, err := s.settings.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			defaults := domain.DefaultSettings(userID)
			return &defaults, nil
		}
		return nil, err
	}
	return saved, nil
}

// Update merges the patch over the current settings, validates the result,
// and persists it. Partial failures leave the saved settings untouched.
func (s *settingsService) Update(ctx context.Context, userID string, patch domain.SettingsPatch) (*domain.Settings, error) {
	var updated domain.Settings
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSettings := repository.NewSQLiteSettingsRepo(tx)

		current, err := txSettings.GetByUser(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			defaults := domain.DefaultSettings(userID)
			current = &defaults
		}

		updated = patch.Apply(*current)
		if err := updated.Validate(); err != nil {
			return err
		}
		return txSettings.Upsert(ctx, &updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
