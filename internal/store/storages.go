package store

import (
	"github.com/avrorin/go-task-auth/internal/logger"
)

// Storages bundles every repository the service layer depends on. It is
// constructed once at startup from a single shared database connection,
// replacing any notion of module-level database state.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}
}
