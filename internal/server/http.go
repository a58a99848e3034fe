package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avrorin/go-task-auth/internal/config"
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(handler http.Handler, cfg config.Server) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.RequestTimeout,
		},
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); h.server != nil && err != nil {
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
