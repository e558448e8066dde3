package journal

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dukerupert/maeumsee/internal/model"
)

const (
	MinContentLen   = 5
	MaxContentLen   = 1000
	MaxPublicPerDay = 3
	MaxImageBytes   = 10 * 1024 * 1024
	MaxSeedNameLen  = 12
)

var imageExts = []string{".jpg", ".jpeg", ".png", ".webp"}

// Outcome is the discriminated result of a user-facing mutation.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeInvalid Outcome = "invalid"
	OutcomeBlocked Outcome = "blocked"
)

type Result struct {
	Outcome Outcome       `json:"outcome"`
	Reason  string        `json:"reason,omitempty"`
	Record  *model.Record `json:"record,omitempty"`
	Blooms  []model.Bloom `json:"blooms,omitempty"`
}

func okResult() Result { return Result{Outcome: OutcomeOK} }

func invalidResult(reason string) Result { return Result{Outcome: OutcomeInvalid, Reason: reason} }

func blockedResult(reason string) Result { return Result{Outcome: OutcomeBlocked, Reason: reason} }

// RecordInput is what the daily journal screen submits.
type RecordInput struct {
	ID        string         `json:"id,omitempty"`
	Date      string         `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Emotion   model.Emotion  `json:"emotion" validate:"emotion"`
	Content   string         `json:"content" validate:"min=5,max=1000"`
	IsPublic  bool           `json:"isPublic"`
	Category  model.Category `json:"category,omitempty" validate:"required_if=IsPublic true,category"`
	ImageURI  string         `json:"imageUri,omitempty" validate:"imageext"`
	ImageSize int64          `json:"imageSize,omitempty" validate:"min=0,max=10485760"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	must("emotion", func(fl validator.FieldLevel) bool {
		return model.Emotion(fl.Field().String()).Valid()
	})
	must("category", func(fl validator.FieldLevel) bool {
		c := fl.Field().String()
		return c == "" || model.Category(c).Valid()
	})
	must("imageext", func(fl validator.FieldLevel) bool {
		uri := fl.Field().String()
		return uri == "" || slices.Contains(imageExts, strings.ToLower(path.Ext(uri)))
	})
	must("mbti", func(fl validator.FieldLevel) bool {
		return slices.Contains(model.MBTITypes, strings.ToUpper(fl.Field().String()))
	})
	return v
}

var reasons = map[string]string{
	"content.min":          fmt.Sprintf("최소 %d자 이상 입력해 주세요.", MinContentLen),
	"content.max":          fmt.Sprintf("최대 %d자까지 작성할 수 있어요.", MaxContentLen),
	"category.required_if": "공개 시에는 카테고리를 선택해야 해요.",
	"category.category":    "알 수 없는 카테고리예요.",
	"emotion.emotion":      "알 수 없는 감정이에요.",
	"date.datetime":        "날짜는 YYYY-MM-DD 형식이어야 해요.",
	"imageUri.imageext":    "jpg, png, webp 형식만 가능합니다.",
	"imageSize.max":        "이미지는 10MB 이하만 첨부할 수 있어요.",
	"mbti.mbti":            "MBTI 유형을 확인해 주세요.",
	"recordTime.datetime":  "알림 시간은 HH:MM 형식이어야 해요.",
	"type.oneof":           "잠금 방식은 biometric 또는 pin 이어야 해요.",
	"pin.len":              "PIN은 숫자 4자리여야 해요.",
	"pin.number":           "PIN은 숫자 4자리여야 해요.",
}

// reasonFor turns the first validation failure into a user-facing message.
func reasonFor(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if msg, ok := reasons[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
}
