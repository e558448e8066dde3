package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dukerupert/maeumsee/internal/journal"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeResult maps a journal outcome onto a status code: ok 200,
// invalid 422, blocked 409.
func writeResult(w http.ResponseWriter, res journal.Result) {
	status := http.StatusOK
	switch res.Outcome {
	case journal.OutcomeInvalid:
		status = http.StatusUnprocessableEntity
	case journal.OutcomeBlocked:
		status = http.StatusConflict
	}
	writeJSON(w, status, res)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}
