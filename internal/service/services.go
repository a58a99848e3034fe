package service

import (
	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/internal/store"
)

type Services struct {
	AuthService AuthService
	TaskService TaskService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, logger),
		TaskService: NewTaskService(storages.TaskRepository, logger),
	}
}
