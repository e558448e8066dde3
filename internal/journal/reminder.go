package journal

import (
	"context"
	"time"

	"github.com/dukerupert/maeumsee/internal/model"
)

const reminderText = "오늘의 마음을 기록해볼까요? ✍️"

// RemindIfDue pushes the daily record reminder once the configured record time
// has passed and today has no record yet. It fires at most once per day and
// reports whether it did.
func (j *Journal) RemindIfDue(ctx context.Context) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	at, err := time.Parse("15:04", j.state.Settings.Notifications.RecordTime)
	if err != nil {
		return false
	}
	now := j.clock().In(j.loc)
	if now.Hour()*60+now.Minute() < at.Hour()*60+at.Minute() {
		return false
	}
	today := now.Format(dateLayout)
	if j.indexByDate(today) >= 0 {
		return false
	}

	id := "noti-reminder-" + today
	if !j.pushOnceLocked(id, model.NotificationStreak, reminderText) {
		return false
	}
	j.persistLocked(ctx)
	j.emit(Change{Entity: "notification", Action: "created", ID: id})
	return true
}
