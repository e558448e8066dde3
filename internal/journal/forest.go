package journal

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dukerupert/maeumsee/internal/model"
)

// FeedBest is the forest filter that ranks every public record by likes.
const FeedBest = "best"

// ReportReasons are the selectable reasons in the report sheet.
var ReportReasons = []string{"부적절한 표현/혐오", "광고/스팸", "개인정보 노출", "기타"}

type FeedItem struct {
	model.Record
	Liked bool `json:"liked"`
}

type LikeResult struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
	Liked bool   `json:"liked"`
}

// Feed lists public records for the empathy forest. "best" (or empty) ranks
// by likes, then newest; a category filters and lists newest first.
func (j *Journal) Feed(filter string) []FeedItem {
	j.mu.Lock()
	defer j.mu.Unlock()

	best := filter == "" || filter == FeedBest
	items := []FeedItem{}
	for _, r := range j.state.Records {
		if !r.IsPublic {
			continue
		}
		if !best && string(r.Category) != filter {
			continue
		}
		items = append(items, FeedItem{Record: r, Liked: j.liked[r.ID]})
	}

	newest := func(a, b FeedItem) int {
		return cmp.Or(strings.Compare(b.Date, a.Date), strings.Compare(b.ID, a.ID))
	}
	if best {
		slices.SortStableFunc(items, func(a, b FeedItem) int {
			return cmp.Or(cmp.Compare(b.Likes, a.Likes), newest(a, b))
		})
	} else {
		slices.SortStableFunc(items, newest)
	}
	return items
}

// LikeToggle adds the local user's empathy to a public record, or takes it
// back. The score is recomputed but no blooms are minted from likes.
func (j *Journal) LikeToggle(ctx context.Context, id string) (LikeResult, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	i := j.indexByID(id)
	if i < 0 || !j.state.Records[i].IsPublic {
		return LikeResult{}, false
	}
	rec := &j.state.Records[i]
	if j.liked[id] {
		delete(j.liked, id)
		rec.Likes = max(0, rec.Likes-1)
	} else {
		j.liked[id] = true
		rec.Likes++
	}

	before := j.acc
	j.acc = j.strategy.Recompute(j.state.Records, j.acc)
	j.persistLocked(ctx)
	j.emit(Change{Entity: "record", Action: "liked", ID: id})
	j.emitGrowth(before)
	return LikeResult{ID: id, Likes: rec.Likes, Liked: j.liked[id]}, true
}

// Report records a moderation report locally. Nothing leaves the device.
func (j *Journal) Report(id, reason, memo string) Result {
	if !slices.Contains(ReportReasons, reason) {
		return invalidResult("신고 사유를 선택해 주세요.")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	i := j.indexByID(id)
	if i < 0 || !j.state.Records[i].IsPublic {
		return invalidResult("신고할 글을 찾을 수 없어요.")
	}
	j.logger.Info("record reported", "record_id", id, "reason", reason, "memo", memo)
	return okResult()
}

// ShareText formats a public record for the system share sheet.
func (j *Journal) ShareText(id string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	i := j.indexByID(id)
	if i < 0 || !j.state.Records[i].IsPublic {
		return "", false
	}
	r := j.state.Records[i]
	return fmt.Sprintf("마음숲 %s %s\n\n%s\n\n#마음씨 #마음숲", r.Category, r.Emotion.Emoji(), r.Content), true
}
