package handler

import (
	"net/http"

	"github.com/dukerupert/maeumsee/internal/journal"
	"github.com/dukerupert/maeumsee/internal/model"
)

type NotificationHandler struct {
	journal *journal.Journal
}

func NewNotificationHandler(j *journal.Journal) *NotificationHandler {
	return &NotificationHandler{journal: j}
}

type notificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
	Unread        int                  `json:"unread"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, notificationsResponse{
		Notifications: h.journal.Notifications(),
		Unread:        h.journal.UnreadCount(),
	})
}

func (h *NotificationHandler) ReadAll(w http.ResponseWriter, r *http.Request) {
	h.journal.MarkAllRead(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
