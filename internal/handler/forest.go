package handler

import (
	"net/http"

	"github.com/dukerupert/maeumsee/internal/journal"
)

type ForestHandler struct {
	journal *journal.Journal
}

func NewForestHandler(j *journal.Journal) *ForestHandler {
	return &ForestHandler{journal: j}
}

func (h *ForestHandler) Feed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.journal.Feed(r.URL.Query().Get("category")))
}

func (h *ForestHandler) Like(w http.ResponseWriter, r *http.Request) {
	res, ok := h.journal.LikeToggle(r.Context(), r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "public record not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type reportRequest struct {
	Reason string `json:"reason"`
	Memo   string `json:"memo"`
}

func (h *ForestHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeResult(w, h.journal.Report(r.PathValue("id"), req.Reason, req.Memo))
}

func (h *ForestHandler) Share(w http.ResponseWriter, r *http.Request) {
	text, ok := h.journal.ShareText(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "public record not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
