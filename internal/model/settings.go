package model

import "time"

type LockType string

const (
	LockBiometric LockType = "biometric"
	LockPIN       LockType = "pin"
)

type NotificationSettings struct {
	Empathy    bool   `json:"empathy"`
	RecordTime string `json:"recordTime,omitempty"`
}

type LockSettings struct {
	Enabled bool     `json:"enabled"`
	Type    LockType `json:"type,omitempty"`
	PIN     string   `json:"pin,omitempty"`
}

type AppSettings struct {
	Notifications   NotificationSettings `json:"notifications"`
	MBTI            string               `json:"mbti,omitempty"`
	Lock            LockSettings         `json:"lock"`
	ProfileImageURI string               `json:"profileImageUri,omitempty"`
	LastSeedEditAt  *time.Time           `json:"lastSeedEditAt,omitempty"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() AppSettings {
	return AppSettings{
		Notifications: NotificationSettings{Empathy: true, RecordTime: "21:00"},
		MBTI:          "INFJ",
		Lock:          LockSettings{Enabled: false, Type: LockPIN},
	}
}

// MBTITypes lists the sixteen accepted personality tags.
var MBTITypes = []string{
	"ISTJ", "ISFJ", "INFJ", "INTJ",
	"ISTP", "ISFP", "INFP", "INTP",
	"ESTP", "ESFP", "ENFP", "ENTP",
	"ESTJ", "ESFJ", "ENFJ", "ENTJ",
}

// NotificationSettingsPatch, LockPatch and SettingsPatch carry partial updates;
// nil fields are left untouched.
type NotificationSettingsPatch struct {
	Empathy    *bool   `json:"empathy,omitempty"`
	RecordTime *string `json:"recordTime,omitempty" validate:"omitempty,datetime=15:04"`
}

type LockPatch struct {
	Enabled *bool     `json:"enabled,omitempty"`
	Type    *LockType `json:"type,omitempty" validate:"omitempty,oneof=biometric pin"`
	PIN     *string   `json:"pin,omitempty" validate:"omitempty,len=4,number"`
}

type SettingsPatch struct {
	Notifications   *NotificationSettingsPatch `json:"notifications,omitempty"`
	MBTI            *string                    `json:"mbti,omitempty" validate:"omitempty,mbti"`
	Lock            *LockPatch                 `json:"lock,omitempty"`
	ProfileImageURI *string                    `json:"profileImageUri,omitempty"`
}
