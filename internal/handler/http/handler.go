package http

import (
	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/internal/service"
)

// Handler holds the HTTP endpoints of the auth API and the middleware chain
// around them. It delegates all business decisions to the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	return &Handler{
		services: services,
		logger:   logger,
	}
}
