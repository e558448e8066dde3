package model

// Bloom is the collectible minted when the growth score crosses a threshold.
type Bloom struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	TagEmotion Emotion `json:"tagEmotion"`
	Date       string  `json:"date"`
	Likes      int     `json:"likes"`
	Emoji      string  `json:"emoji"`
	Note       string  `json:"note,omitempty"`
}
