package journal

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dukerupert/maeumsee/internal/growth"
	"github.com/dukerupert/maeumsee/internal/model"
)

const (
	initialLikesRange = 5
	empathyText       = "공개 기록이 등록됐어요. 공감을 기다려봅시다 💧"
)

var streakMilestones = []int{3, 7, 14, 30}

// Records returns a copy of the record collection in insertion order.
func (j *Journal) Records() []model.Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.state.Records)
}

// GetByDate returns the first record for an exact date string.
func (j *Journal) GetByDate(date string) (model.Record, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if i := j.indexByDate(date); i >= 0 {
		return j.state.Records[i], true
	}
	return model.Record{}, false
}

func (j *Journal) GetByID(id string) (model.Record, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if i := j.indexByID(id); i >= 0 {
		return j.state.Records[i], true
	}
	return model.Record{}, false
}

func (j *Journal) indexByDate(date string) int {
	return slices.IndexFunc(j.state.Records, func(r model.Record) bool { return r.Date == date })
}

func (j *Journal) indexByID(id string) int {
	return slices.IndexFunc(j.state.Records, func(r model.Record) bool { return r.ID == id })
}

// UpsertByDate is the daily journal save path. It validates the input,
// applies the per-day quotas and hands the record to RecordActivity.
func (j *Journal) UpsertByDate(ctx context.Context, in RecordInput) Result {
	in.Content = strings.TrimSpace(in.Content)
	if in.Date == "" {
		in.Date = j.today()
	}
	if err := validate.Struct(in); err != nil {
		return invalidResult(reasonFor(err))
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	var prev *model.Record
	if i := j.indexByDate(in.Date); i >= 0 {
		p := j.state.Records[i]
		prev = &p
	}

	if in.IsPublic {
		if (prev == nil || !prev.IsPublic) && j.countOn(in.Date, true) >= MaxPublicPerDay {
			return blockedResult(fmt.Sprintf("공개 기록은 하루 %d개까지 가능해요.", MaxPublicPerDay))
		}
	} else {
		// An existing private record may be edited freely; only a second one is blocked.
		if prev == nil || prev.IsPublic {
			if j.countOn(in.Date, false) > 0 {
				return blockedResult("비공개 기록은 하루 한 번만 가능해요.")
			}
		}
	}

	rec := model.Record{
		Date:     in.Date,
		Emotion:  in.Emotion,
		Content:  in.Content,
		IsPublic: in.IsPublic,
		Category: in.Category,
		ImageURI: in.ImageURI,
	}
	switch {
	case prev != nil:
		rec.ID = prev.ID
	case in.ID != "" && j.indexByID(in.ID) < 0:
		rec.ID = in.ID
	default:
		rec.ID = uuid.NewString()
	}
	if rec.IsPublic {
		if prev != nil {
			rec.Likes = prev.Likes
		} else {
			rec.Likes = j.rand(initialLikesRange)
		}
	}

	minted := j.recordActivityLocked(ctx, rec)
	return Result{Outcome: OutcomeOK, Record: &rec, Blooms: minted}
}

func (j *Journal) countOn(date string, public bool) int {
	n := 0
	for _, r := range j.state.Records {
		if r.Date == date && r.IsPublic == public {
			n++
		}
	}
	return n
}

// RecordActivity upserts an already validated record by date, advances the
// growth score and mints blooms for every threshold crossed. It returns the
// newly minted blooms.
func (j *Journal) RecordActivity(ctx context.Context, rec model.Record) []model.Bloom {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.recordActivityLocked(ctx, rec)
}

func (j *Journal) recordActivityLocked(ctx context.Context, rec model.Record) []model.Bloom {
	if !rec.IsPublic {
		rec.Likes = 0
	}

	before := j.acc
	if i := j.indexByDate(rec.Date); i >= 0 {
		// The day's record keeps its identity across saves.
		rec.ID = j.state.Records[i].ID
		j.state.Records[i] = rec
	} else {
		if rec.ID == "" || j.indexByID(rec.ID) >= 0 {
			rec.ID = uuid.NewString()
		}
		j.state.Records = append(j.state.Records, rec)
	}
	j.acc = j.strategy.AfterSave(j.state.Records, before)

	var minted []model.Bloom
	for _, i := range growth.Crossed(before, j.acc) {
		bloom := growth.MintBloom(j.state.SeedName, rec, i)
		if j.hasBloom(bloom.ID) {
			continue
		}
		j.state.Blooms = append(j.state.Blooms, bloom)
		minted = append(minted, bloom)
		j.pushOnceLocked("noti-"+bloom.ID, model.NotificationBloom,
			fmt.Sprintf("개화 단계 도달! (%dpt)", growth.Thresholds[i]))
	}

	if rec.IsPublic {
		j.addNotificationLocked(model.NotificationEmpathy, empathyText)
	}

	if rec.Date == j.today() {
		streak := j.streakLocked()
		if slices.Contains(streakMilestones, streak) {
			j.pushOnceLocked(fmt.Sprintf("noti-streak-%s-%d", rec.Date, streak), model.NotificationStreak,
				fmt.Sprintf("%d일 연속 기록 중이에요! 🌱", streak))
		}
	}

	j.persistLocked(ctx)
	j.emit(Change{Entity: "record", Action: "saved", ID: rec.ID})
	for _, b := range minted {
		j.emit(Change{Entity: "bloom", Action: "minted", ID: b.ID})
	}
	j.emitGrowth(before)
	return minted
}

func (j *Journal) hasBloom(id string) bool {
	return slices.ContainsFunc(j.state.Blooms, func(b model.Bloom) bool { return b.ID == id })
}

// Update replaces the editable fields of the record with the same id. The
// stored date and like count are kept. A missing id is a silent no-op and
// returns an ok result without a record.
func (j *Journal) Update(ctx context.Context, rec model.Record) Result {
	rec.Content = strings.TrimSpace(rec.Content)
	if rec.IsPublic && rec.Category == "" {
		return invalidResult(reasons["category.required_if"])
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	i := j.indexByID(rec.ID)
	if i < 0 {
		return okResult()
	}
	rec.Date = j.state.Records[i].Date
	rec.Likes = 0
	if rec.IsPublic {
		rec.Likes = j.state.Records[i].Likes
	}
	before := j.acc
	j.state.Records[i] = rec
	j.acc = j.strategy.Recompute(j.state.Records, j.acc)
	j.persistLocked(ctx)
	j.emit(Change{Entity: "record", Action: "updated", ID: rec.ID})
	j.emitGrowth(before)
	return Result{Outcome: OutcomeOK, Record: &rec}
}

// Delete removes a record by id. Blooms minted from it are kept. It reports
// whether a record was removed.
func (j *Journal) Delete(ctx context.Context, id string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	i := j.indexByID(id)
	if i < 0 {
		return false
	}
	j.state.Records = slices.Delete(j.state.Records, i, i+1)
	delete(j.liked, id)
	before := j.acc
	j.acc = j.strategy.Recompute(j.state.Records, j.acc)
	j.persistLocked(ctx)
	j.emit(Change{Entity: "record", Action: "deleted", ID: id})
	j.emitGrowth(before)
	return true
}
