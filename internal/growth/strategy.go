// Package growth turns journal activity into the seed's growth score and the
// flower stage shown on the home screen.
package growth

import (
	"fmt"
	"strings"

	"github.com/dukerupert/maeumsee/internal/model"
)

// MaxScore is the upper bound of the displayed score.
const MaxScore = 100

const (
	PublicPoints  = 10
	PrivatePoints = 5
	LikePoints    = 2
	FlatIncrement = 10
)

// Strategy decides how the growth accumulator moves.
//
// Accumulator values gate threshold crossings; Display clamps them for the gauge.
type Strategy interface {
	Name() string
	// AfterSave returns the accumulator once a record was saved into records.
	AfterSave(records []model.Record, current int) int
	// Recompute returns the accumulator after a mutation that is not a save
	// (update by id, delete, like toggle).
	Recompute(records []model.Record, current int) int
}

// Points derives the score from scratch: 10 per public record, 5 per private
// record, plus 2 per like. The accumulator is unbounded.
type Points struct{}

func (Points) Name() string { return "points" }

func (Points) AfterSave(records []model.Record, _ int) int { return Sum(records) }

func (Points) Recompute(records []model.Record, _ int) int { return Sum(records) }

// Flat adds 10 for every save regardless of visibility or likes, clamped to
// MaxScore. Edits and deletions leave the counter where it is.
type Flat struct{}

func (Flat) Name() string { return "flat" }

func (Flat) AfterSave(_ []model.Record, current int) int {
	return Clamp(current + FlatIncrement)
}

func (Flat) Recompute(_ []model.Record, current int) int { return Clamp(current) }

// Sum computes the points accumulator for a record collection. It does not
// depend on record order.
func Sum(records []model.Record) int {
	pt := 0
	for _, r := range records {
		if r.IsPublic {
			pt += PublicPoints
		} else {
			pt += PrivatePoints
		}
		pt += r.Likes * LikePoints
	}
	return pt
}

// Clamp bounds a score to [0, MaxScore].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// ParseStrategy maps a configuration value to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "points":
		return Points{}, nil
	case "flat":
		return Flat{}, nil
	default:
		return nil, fmt.Errorf("unknown growth strategy %q", name)
	}
}
