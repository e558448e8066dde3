package model

import "time"

type NotificationType string

const (
	NotificationEmpathy NotificationType = "empathy"
	NotificationBloom   NotificationType = "bloom"
	NotificationStreak  NotificationType = "streak"
)

// Notification is an in-app feed item. Feeds are kept most-recent-first by insertion.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Text      string           `json:"text"`
	CreatedAt time.Time        `json:"createdAt"`
	Read      bool             `json:"read"`
}
