package service

import (
	"context"
	"fmt"

	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/internal/store"
	"github.com/avrorin/go-task-auth/models"
)

// taskService is the concrete implementation of [TaskService]. It is a thin
// read-only layer over the task repository; tasks are created elsewhere.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewTaskService constructs a [TaskService] wired to the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// ListUserTasks returns every task owned by userID, newest first. Note that
// callers pass whatever user ID the request names: ownership of the listing
// is not checked against the caller's identity anywhere in this service.
func (t *taskService) ListUserTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("userID", userID).Msg("invalid user id provided")
		return nil, ErrInvalidDataProvided
	}

	tasks, err := t.taskRepository.FindTasksByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("task listing failed")
		return nil, fmt.Errorf("task listing failed: %w", err)
	}

	return tasks, nil
}
