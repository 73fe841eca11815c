package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/repository"
)

type statsService struct {
	stats repository.StatsRepo
}

func NewStatsService(stats repository.StatsRepo) StatsService {
	return &statsService{stats: stats}
}

// GetDaily returns the counters for one day. A day with no recorded activity
// is a zero day, never an error.
func (s *statsService) GetDaily(ctx context.Context, userID, date string) (*domain.DailyStats, error) {
	stats, err := s.stats.Get(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			zero := domain.ZeroDailyStats(userID, date)
			return &zero, nil
		}
		return nil, err
	}
	return stats, nil
}

func (s *statsService) Today(ctx context.Context, userID string) (*domain.DailyStats, error) {
	return s.GetDaily(ctx, userID, domain.DayKey(time.Now()))
}
