package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/events"
	"github.com/saransh1220/filevault/internal/middleware"
)

// EventsHandler upgrades authenticated clients onto the events hub so they
// can hear when their thumbnails are ready.
type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Subscribe handles GET /events.
func (h *EventsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())
	if userID == uuid.Nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	events.ServeWs(h.hub, w, r, userID)
}
