package handler

import (
	"net/http"

	"github.com/dukerupert/maeumsee/internal/journal"
	"github.com/dukerupert/maeumsee/internal/model"
)

type SettingsHandler struct {
	journal *journal.Journal
}

func NewSettingsHandler(j *journal.Journal) *SettingsHandler {
	return &SettingsHandler{journal: j}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.journal.Settings())
}

func (h *SettingsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch model.SettingsPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	res := h.journal.UpdateSettings(r.Context(), patch)
	if res.Outcome != journal.OutcomeOK {
		writeResult(w, res)
		return
	}
	writeJSON(w, http.StatusOK, h.journal.Settings())
}

type seedNameRequest struct {
	Name string `json:"name"`
}

// SetSeedName applies the once-a-month rename rule.
func (h *SettingsHandler) SetSeedName(w http.ResponseWriter, r *http.Request) {
	var req seedNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeResult(w, h.journal.SetSeedNameWithLimit(r.Context(), req.Name))
}

type profileImageRequest struct {
	URI string `json:"uri"`
}

func (h *SettingsHandler) SetProfileImage(w http.ResponseWriter, r *http.Request) {
	var req profileImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.journal.SetProfileImage(r.Context(), req.URI)
	writeJSON(w, http.StatusOK, h.journal.Settings())
}
