package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/filevault/internal/handler"
	"github.com/saransh1220/filevault/internal/middleware"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	FileHandler    *handler.FileHandler
	AppHandler     *handler.AppHandler
	EventsHandler  *handler.EventsHandler
	AuthMiddleware *middleware.AuthMiddleWare
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) http.Handler {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// App Routes
	mux.HandleFunc("GET /status", config.AppHandler.Status)
	mux.HandleFunc("GET /stats", config.AppHandler.Stats)

	// Auth Routes
	mux.HandleFunc("POST /users", config.AuthHandler.Register)
	mux.HandleFunc("GET /connect", config.AuthHandler.Connect)
	mux.Handle("GET /disconnect", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.AuthHandler.Disconnect)))
	mux.Handle("GET /users/me", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.AuthHandler.Me)))

	// File Routes
	mux.Handle("POST /files", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.FileHandler.Upload)))
	mux.Handle("GET /files", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.FileHandler.Index)))
	mux.Handle("GET /files/{id}", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.FileHandler.Show)))
	mux.Handle("PUT /files/{id}/publish", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.FileHandler.Publish)))
	mux.Handle("PUT /files/{id}/unpublish", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.FileHandler.Unpublish)))
	mux.Handle("GET /files/{id}/data", config.AuthMiddleware.FlexibleAuth(http.HandlerFunc(config.FileHandler.Data)))

	// Events
	mux.Handle("GET /events", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.EventsHandler.Subscribe)))

	return middleware.PrometheusMiddleware(mux)
}
