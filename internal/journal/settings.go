package journal

import (
	"context"
	"strings"

	"github.com/dukerupert/maeumsee/internal/model"
)

const monthLayout = "2006-01"

func (j *Journal) Settings() model.AppSettings {
	j.mu.Lock()
	defer j.mu.Unlock()
	s := j.state.Settings
	if s.LastSeedEditAt != nil {
		t := *s.LastSeedEditAt
		s.LastSeedEditAt = &t
	}
	return s
}

func (j *Journal) SeedName() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state.SeedName
}

// UpdateSettings merges a patch: notifications and lock are merged one level
// deep, every other key is replaced when present.
func (j *Journal) UpdateSettings(ctx context.Context, patch model.SettingsPatch) Result {
	if patch.MBTI != nil {
		m := strings.ToUpper(strings.TrimSpace(*patch.MBTI))
		patch.MBTI = &m
	}
	if err := validate.Struct(patch); err != nil {
		return invalidResult(reasonFor(err))
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	s := &j.state.Settings
	if n := patch.Notifications; n != nil {
		if n.Empathy != nil {
			s.Notifications.Empathy = *n.Empathy
		}
		if n.RecordTime != nil {
			s.Notifications.RecordTime = *n.RecordTime
		}
	}
	if l := patch.Lock; l != nil {
		if l.Enabled != nil {
			s.Lock.Enabled = *l.Enabled
		}
		if l.Type != nil {
			s.Lock.Type = *l.Type
		}
		if l.PIN != nil {
			s.Lock.PIN = *l.PIN
		}
	}
	if patch.MBTI != nil {
		s.MBTI = *patch.MBTI
	}
	if patch.ProfileImageURI != nil {
		s.ProfileImageURI = *patch.ProfileImageURI
	}

	j.persistLocked(ctx)
	j.emit(Change{Entity: "settings", Action: "updated"})
	return okResult()
}

// SetProfileImage replaces the profile photo reference; an empty uri clears it.
func (j *Journal) SetProfileImage(ctx context.Context, uri string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.state.Settings.ProfileImageURI = uri
	j.persistLocked(ctx)
	j.emit(Change{Entity: "settings", Action: "updated"})
}

// SetSeedName renames the seed without any quota.
func (j *Journal) SetSeedName(ctx context.Context, name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.state.SeedName = name
	j.persistLocked(ctx)
	j.emit(Change{Entity: "seed", Action: "renamed"})
}

// SetSeedNameWithLimit renames the seed at most once per local calendar month.
func (j *Journal) SetSeedNameWithLimit(ctx context.Context, name string) Result {
	next := strings.TrimSpace(name)
	if err := validate.Var(next, "min=1,max=12"); err != nil {
		return invalidResult("씨앗 이름은 1~12자로 지어주세요.")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.clock()
	if prev := j.state.Settings.LastSeedEditAt; prev != nil &&
		prev.In(j.loc).Format(monthLayout) == now.In(j.loc).Format(monthLayout) {
		return blockedResult("씨앗 이름은 한 달에 한 번만 바꿀 수 있어요.")
	}

	stamp := now.UTC()
	j.state.SeedName = next
	j.state.Settings.LastSeedEditAt = &stamp
	j.persistLocked(ctx)
	j.emit(Change{Entity: "seed", Action: "renamed"})
	return okResult()
}
