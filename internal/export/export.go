// Package export renders the record collection as downloadable documents.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dukerupert/maeumsee/internal/model"
)

// CSVHeader is the fixed first row of a CSV export.
var CSVHeader = []string{"id", "date", "emotion", "content", "isPublic", "category", "likes"}

// ToJSON returns the records as a 2-space indented JSON array.
func ToJSON(records []model.Record) ([]byte, error) {
	if records == nil {
		records = []model.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return data, nil
}

// ToCSV returns the records as CSV text. Rows are separated by "\n" with no
// trailing newline.
func ToCSV(records []model.Record) string {
	rows := make([]string, 0, len(records)+1)
	rows = append(rows, joinRow(CSVHeader))
	for _, r := range records {
		rows = append(rows, joinRow([]string{
			r.ID,
			r.Date,
			string(r.Emotion),
			r.Content,
			strconv.FormatBool(r.IsPublic),
			string(r.Category),
			strconv.Itoa(r.Likes),
		}))
	}
	return strings.Join(rows, "\n")
}

func joinRow(fields []string) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = escapeField(f)
	}
	return strings.Join(out, ",")
}

// escapeField writes line breaks (\n, \r\n or a lone \r) as the two characters
// `\n` so every record stays on one line, and quotes fields holding a comma,
// quote or line break.
func escapeField(s string) string {
	needsQuotes := strings.ContainsAny(s, ",\"\r\n")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, `"`, `""`)
	if needsQuotes {
		return `"` + s + `"`
	}
	return s
}
