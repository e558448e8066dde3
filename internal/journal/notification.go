package journal

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/dukerupert/maeumsee/internal/model"
)

// Notifications returns the feed, most recent first.
func (j *Journal) Notifications() []model.Notification {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.state.Notifications)
}

// UnreadCount counts notifications not yet marked read.
func (j *Journal) UnreadCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for _, x := range j.state.Notifications {
		if !x.Read {
			n++
		}
	}
	return n
}

// AddNotification inserts a notification with a fresh id at the head of the feed.
func (j *Journal) AddNotification(ctx context.Context, typ model.NotificationType, text string) model.Notification {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := j.addNotificationLocked(typ, text)
	j.persistLocked(ctx)
	j.emit(Change{Entity: "notification", Action: "created", ID: n.ID})
	return n
}

// PushNotiOnce inserts a notification under a caller-chosen id unless one
// with that id already exists. It reports whether it inserted.
func (j *Journal) PushNotiOnce(ctx context.Context, id string, typ model.NotificationType, text string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.pushOnceLocked(id, typ, text) {
		return false
	}
	j.persistLocked(ctx)
	j.emit(Change{Entity: "notification", Action: "created", ID: id})
	return true
}

// MarkAllRead flips every notification to read in one mutation.
func (j *Journal) MarkAllRead(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := range j.state.Notifications {
		j.state.Notifications[i].Read = true
	}
	j.persistLocked(ctx)
	j.emit(Change{Entity: "notification", Action: "read_all"})
}

func (j *Journal) addNotificationLocked(typ model.NotificationType, text string) model.Notification {
	n := model.Notification{
		ID:        "noti-" + uuid.NewString(),
		Type:      typ,
		Text:      text,
		CreatedAt: j.clock().UTC(),
	}
	j.state.Notifications = slices.Insert(j.state.Notifications, 0, n)
	return n
}

func (j *Journal) pushOnceLocked(id string, typ model.NotificationType, text string) bool {
	if slices.ContainsFunc(j.state.Notifications, func(n model.Notification) bool { return n.ID == id }) {
		return false
	}
	n := model.Notification{
		ID:        id,
		Type:      typ,
		Text:      text,
		CreatedAt: j.clock().UTC(),
	}
	j.state.Notifications = slices.Insert(j.state.Notifications, 0, n)
	return true
}
