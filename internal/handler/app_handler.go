package handler

import (
	"encoding/json"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/filevault/internal/domain"
)

// AppHandler serves the liveness and stats endpoints.
type AppHandler struct {
	redisClient *redis.Client
	users       domain.UserRepository
	files       domain.FileRepository
	dbPing      func() error
}

func NewAppHandler(redisClient *redis.Client, users domain.UserRepository, files domain.FileRepository, dbPing func() error) *AppHandler {
	return &AppHandler{redisClient: redisClient, users: users, files: files, dbPing: dbPing}
}

// Status handles GET /status.
func (h *AppHandler) Status(w http.ResponseWriter, r *http.Request) {
	redisAlive := h.redisClient.Ping(r.Context()).Err() == nil
	dbAlive := h.dbPing() == nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"redis": redisAlive, "db": dbAlive})
}

// Stats handles GET /stats.
func (h *AppHandler) Stats(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Count(r.Context())
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}
	files, err := h.files.Count(r.Context())
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"users": users, "files": files})
}
