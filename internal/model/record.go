package model

// Emotion is the mood sticker attached to a record.
type Emotion string

const (
	EmotionJoy        Emotion = "기쁨"
	EmotionSadness    Emotion = "슬픔"
	EmotionAnxiety    Emotion = "불안"
	EmotionAnger      Emotion = "분노"
	EmotionLoneliness Emotion = "외로움"
	EmotionExcitement Emotion = "설렘"
	EmotionEmptiness  Emotion = "공허"
)

var Emotions = []Emotion{
	EmotionJoy,
	EmotionExcitement,
	EmotionSadness,
	EmotionAnxiety,
	EmotionAnger,
	EmotionLoneliness,
	EmotionEmptiness,
}

var emotionEmoji = map[Emotion]string{
	EmotionJoy:        "😊",
	EmotionExcitement: "✨",
	EmotionSadness:    "😢",
	EmotionAnxiety:    "😟",
	EmotionAnger:      "😠",
	EmotionLoneliness: "🥲",
	EmotionEmptiness:  "🌫️",
}

func (e Emotion) Valid() bool {
	_, ok := emotionEmoji[e]
	return ok
}

// Emoji returns the sticker glyph for the emotion, or an empty string if unknown.
func (e Emotion) Emoji() string {
	return emotionEmoji[e]
}

// Category tags a public record for the empathy forest. The empty value means "no category".
type Category string

const (
	CategoryDaily        Category = "일상"
	CategoryWorry        Category = "고민"
	CategoryRomance      Category = "연애"
	CategoryWork         Category = "회사"
	CategoryHumor        Category = "유머"
	CategoryGrowth       Category = "성장"
	CategorySelfCare     Category = "자기돌봄"
	CategoryRelationship Category = "관계"
)

// Categories is the superset of the journaling form and forest filter tags.
var Categories = []Category{
	CategoryDaily,
	CategoryWorry,
	CategoryRomance,
	CategoryWork,
	CategoryHumor,
	CategoryGrowth,
	CategorySelfCare,
	CategoryRelationship,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Record is one journal entry. Date is a local calendar day, YYYY-MM-DD.
type Record struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Emotion  Emotion  `json:"emotion"`
	Content  string   `json:"content"`
	IsPublic bool     `json:"isPublic"`
	Category Category `json:"category,omitempty"`
	ImageURI string   `json:"imageUri,omitempty"`
	Likes    int      `json:"likes"`
}
