package growth

import (
	"fmt"
	"unicode/utf8"

	"github.com/dukerupert/maeumsee/internal/model"
)

// Thresholds are the accumulator values that mint a bloom when crossed.
var Thresholds = []int{25, 50, 75, 100}

var bloomEmoji = []string{"🌱", "🌿", "🌼", "🌸", "🌺"}

const noteLength = 40

// Crossed returns the indexes of thresholds t with before < t <= after.
func Crossed(before, after int) []int {
	var idx []int
	for i, t := range Thresholds {
		if before < t && after >= t {
			idx = append(idx, i)
		}
	}
	return idx
}

// BloomID is the idempotency key of the bloom minted for (record, threshold).
func BloomID(recordID string, thresholdIndex int) string {
	return fmt.Sprintf("%s-b%d", recordID, thresholdIndex)
}

// BloomEmoji picks the decorative glyph for a threshold index.
func BloomEmoji(thresholdIndex int) string {
	if i := thresholdIndex + 1; i >= 0 && i < len(bloomEmoji) {
		return bloomEmoji[i]
	}
	return "🌸"
}

// MintBloom builds the bloom for a record crossing Thresholds[thresholdIndex].
func MintBloom(seedName string, rec model.Record, thresholdIndex int) model.Bloom {
	return model.Bloom{
		ID:         BloomID(rec.ID, thresholdIndex),
		Name:       seedName,
		TagEmotion: rec.Emotion,
		Date:       rec.Date,
		Likes:      rec.Likes,
		Emoji:      BloomEmoji(thresholdIndex),
		Note:       truncate(rec.Content, noteLength),
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
