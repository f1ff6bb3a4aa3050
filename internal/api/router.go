package api

import (
	"corvo-delivery/internal/api/handlers"
	"corvo-delivery/internal/services"
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(dispatcher *services.Dispatcher, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	pageHandler := &handlers.PageHandler{Dispatcher: dispatcher}
	viewHandler := &handlers.ViewHandler{Dispatcher: dispatcher}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/view", viewHandler.View)
	mux.HandleFunc("/api/actions", viewHandler.Act)
	mux.HandleFunc("/", pageHandler.Serve)

	return chain(mux,
		requestIDMiddleware(logger),
		loggingMiddleware,
		recoverMiddleware,
	)
}
