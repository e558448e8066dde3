// Package journal owns the app state: records, blooms, settings and the
// notification feed. Every screen reads and mutates it through a *Journal.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dukerupert/maeumsee/internal/growth"
	"github.com/dukerupert/maeumsee/internal/model"
)

// StateKey is the storage key of the persisted state blob.
const StateKey = "maeumsee_state_v1"

const dateLayout = "2006-01-02"

// Storage is the device-local key-value blob store.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Change describes a mutation, for live UI refresh.
type Change struct {
	Entity string
	Action string
	ID     string
	Score  int
}

// ChangeFunc is called after every mutation while the journal lock is held.
// It must not call back into the Journal.
type ChangeFunc func(Change)

type Options struct {
	Strategy growth.Strategy
	Location *time.Location
	Now      func() time.Time
	// Rand returns a value in [0, n); it seeds like counts of new public records.
	Rand     func(n int) int
	OnChange ChangeFunc
	Logger   *slog.Logger
}

// Journal is the single owner of the mutable app state.
type Journal struct {
	mu       sync.Mutex
	state    model.State
	acc      int
	liked    map[string]bool
	storage  Storage
	strategy growth.Strategy
	loc      *time.Location
	now      func() time.Time
	rand     func(n int) int
	onChange ChangeFunc
	logger   *slog.Logger
}

// New returns a journal holding the empty initial state. Call Load to read
// persisted state.
func New(storage Storage, opts Options) *Journal {
	j := &Journal{
		state:    model.InitialState(),
		liked:    make(map[string]bool),
		storage:  storage,
		strategy: opts.Strategy,
		loc:      opts.Location,
		now:      opts.Now,
		rand:     opts.Rand,
		onChange: opts.OnChange,
		logger:   opts.Logger,
	}
	if j.strategy == nil {
		j.strategy = growth.Points{}
	}
	if j.loc == nil {
		j.loc = time.Local
	}
	if j.now == nil {
		j.now = time.Now
	}
	if j.rand == nil {
		j.rand = rand.IntN
	}
	if j.logger == nil {
		j.logger = slog.Default()
	}
	return j
}

// Load reads the persisted state. A missing blob means first run and seeds
// demo content; read or parse failures are logged and fall back to the
// initial state.
func (j *Journal) Load(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	raw, ok, err := j.storage.Get(ctx, StateKey)
	switch {
	case err != nil:
		j.logger.Warn("load state", "error", err)
		j.state = model.InitialState()
	case !ok:
		j.state = demoState(j.clock(), j.loc)
	default:
		st, err := decodeState([]byte(raw))
		if err != nil {
			j.logger.Warn("load state", "error", err)
			st = model.InitialState()
		}
		j.state = st
	}
	j.liked = make(map[string]bool)
	j.acc = j.strategy.Recompute(j.state.Records, j.state.GrowthScore)
	j.state.GrowthScore = growth.Clamp(j.acc)
	j.emit(Change{Entity: "state", Action: "loaded"})
}

func decodeState(data []byte) (model.State, error) {
	st := model.InitialState()
	if err := json.Unmarshal(data, &st); err != nil {
		return model.InitialState(), fmt.Errorf("decode state: %w", err)
	}
	if st.Records == nil {
		st.Records = []model.Record{}
	}
	if st.Blooms == nil {
		st.Blooms = []model.Bloom{}
	}
	if st.Notifications == nil {
		st.Notifications = []model.Notification{}
	}
	return st, nil
}

func demoState(now time.Time, loc *time.Location) model.State {
	st := model.InitialState()
	day := now.In(loc).AddDate(0, 0, -2).Format(dateLayout)
	st.Records = []model.Record{{
		ID:       "seed-1",
		Date:     day,
		Emotion:  model.EmotionJoy,
		Content:  "작은 성취가 있었던 날",
		IsPublic: true,
		Category: model.CategoryGrowth,
		Likes:    4,
	}}
	st.Blooms = []model.Bloom{{
		ID:         "b-1",
		Name:       st.SeedName,
		TagEmotion: model.EmotionJoy,
		Date:       day,
		Likes:      12,
		Emoji:      "🌸",
		Note:       "첫 성취의 기쁨",
	}}
	st.Notifications = []model.Notification{{
		ID:        "n-hello",
		Type:      model.NotificationStreak,
		Text:      "마음씨에 오신 것을 환영해요! 오늘 첫 기록을 남겨보세요.",
		CreatedAt: now.UTC(),
	}}
	return st
}

// persistLocked writes the whole state blob. Failures are logged and
// swallowed; in-memory state stays authoritative until the next save.
func (j *Journal) persistLocked(ctx context.Context) {
	j.state.GrowthScore = growth.Clamp(j.acc)
	data, err := json.Marshal(j.state)
	if err != nil {
		j.logger.Warn("save state", "error", err)
		return
	}
	if err := j.storage.Set(ctx, StateKey, string(data)); err != nil {
		j.logger.Warn("save state", "error", err)
	}
}

// Save persists the current state.
func (j *Journal) Save(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.persistLocked(ctx)
}

func (j *Journal) emit(c Change) {
	if j.onChange == nil {
		return
	}
	c.Score = growth.Clamp(j.acc)
	j.onChange(c)
}

// emitGrowth reports a growth change when the displayed score moved.
func (j *Journal) emitGrowth(before int) {
	if growth.Clamp(before) != growth.Clamp(j.acc) {
		j.emit(Change{Entity: "growth", Action: "changed"})
	}
}

func (j *Journal) clock() time.Time {
	return j.now()
}

func (j *Journal) today() string {
	return j.clock().In(j.loc).Format(dateLayout)
}

// Today returns the current local calendar day.
func (j *Journal) Today() string {
	return j.today()
}

// Snapshot returns the persisted form of the current state.
func (j *Journal) Snapshot() ([]byte, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.state.GrowthScore = growth.Clamp(j.acc)
	data, err := json.Marshal(j.state)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return data, nil
}

// Restore replaces the whole state with a snapshot and persists it.
func (j *Journal) Restore(ctx context.Context, data []byte) error {
	st, err := decodeState(data)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.state = st
	j.liked = make(map[string]bool)
	j.acc = j.strategy.Recompute(j.state.Records, j.state.GrowthScore)
	j.persistLocked(ctx)
	j.emit(Change{Entity: "state", Action: "restored"})
	return nil
}

// ClearAll wipes everything back to the initial state and removes the stored blob.
func (j *Journal) ClearAll(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.state = model.InitialState()
	j.liked = make(map[string]bool)
	j.acc = 0
	if err := j.storage.Remove(ctx, StateKey); err != nil {
		j.logger.Warn("remove state", "error", err)
	}
	j.persistLocked(ctx)
	j.emit(Change{Entity: "state", Action: "cleared"})
}
