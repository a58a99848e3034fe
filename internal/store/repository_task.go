package store

import (
	"context"
	"fmt"

	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// Tasks are created by the task application on top of this API; the auth
// service only ever reads them.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// FindTasksByUser returns every task referencing userID ordered by creation
// time descending. A user without tasks yields an empty, non-nil slice so the
// JSON listing serializes as [] rather than null.
func (r *taskRepository) FindTasksByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindTasksByUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.TaskID, &task.UserID, &task.Description, &task.CreatedAt); err != nil {
			log.Err(err).Str("func", "*taskRepository.FindTasksByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByUser").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}
