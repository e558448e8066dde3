package journal

import (
	"slices"

	"github.com/dukerupert/maeumsee/internal/growth"
	"github.com/dukerupert/maeumsee/internal/model"
)

// GrowthView is what the home gauge and flower renderer read.
type GrowthView struct {
	growth.Progress
	Accumulator int    `json:"accumulator"`
	Strategy    string `json:"strategy"`
}

func (j *Journal) Growth() GrowthView {
	j.mu.Lock()
	defer j.mu.Unlock()
	return GrowthView{
		Progress:    growth.ProgressFor(growth.Clamp(j.acc)),
		Accumulator: j.acc,
		Strategy:    j.strategy.Name(),
	}
}

// GrowthScore is the displayed score, always within [0, 100].
func (j *Journal) GrowthScore() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return growth.Clamp(j.acc)
}

func (j *Journal) Blooms() []model.Bloom {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.state.Blooms)
}

func (j *Journal) Stats() model.Stats {
	j.mu.Lock()
	defer j.mu.Unlock()
	likes := 0
	for _, r := range j.state.Records {
		likes += r.Likes
	}
	return model.Stats{
		TotalRecords: len(j.state.Records),
		TotalLikes:   likes,
		TotalBlooms:  len(j.state.Blooms),
	}
}

// StreakDays counts consecutive local days, ending today, that have a record.
func (j *Journal) StreakDays() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.streakLocked()
}

func (j *Journal) streakLocked() int {
	days := make(map[string]bool, len(j.state.Records))
	for _, r := range j.state.Records {
		days[r.Date] = true
	}
	d := j.clock().In(j.loc)
	streak := 0
	for days[d.Format(dateLayout)] {
		streak++
		d = d.AddDate(0, 0, -1)
	}
	return streak
}
