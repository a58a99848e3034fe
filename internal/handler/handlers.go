package handler

import (
	"github.com/avrorin/go-task-auth/internal/handler/http"
	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
