package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pomo/internal/db"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, userID, title string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("task title cannot be empty")
	}

	task := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

// Update applies the patch inside a transaction so the read and write see a
// consistent row. A task crossing from open to completed earns a daily-stats
// credit; unchecking later does not take the credit back.
func (s *taskService) Update(ctx context.Context, id string, patch domain.TaskPatch) (task *domain.Task, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"task_id": id}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "update-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, fmt.Errorf("task title cannot be empty")
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txStats := repository.NewSQLiteStatsRepo(tx)

		existing, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		updated := patch.Apply(*existing)
		if err := txTasks.Update(ctx, &updated); err != nil {
			return err
		}

		if !existing.Completed && updated.Completed {
			now := time.Now().UTC()
			if err := txStats.IncrementTasksCompleted(ctx, updated.UserID, domain.DayKey(now)); err != nil {
				return err
			}
			fields["completed"] = true
		}

		task = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
