package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/maeumsee/internal/journal"
	"github.com/dukerupert/maeumsee/internal/model"
)

type RecordHandler struct {
	journal *journal.Journal
	logger  *slog.Logger
}

func NewRecordHandler(j *journal.Journal, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{journal: j, logger: logger}
}

func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.journal.Records())
}

func (h *RecordHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.journal.GetByDate(r.PathValue("date"))
	if !ok {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// SaveDaily is the daily journal form: one record per calendar day.
func (h *RecordHandler) SaveDaily(w http.ResponseWriter, r *http.Request) {
	var in journal.RecordInput
	if !decodeJSON(w, r, &in) {
		return
	}

	res := h.journal.UpsertByDate(r.Context(), in)
	if res.Outcome != journal.OutcomeOK {
		h.logger.Debug("daily save rejected", "outcome", res.Outcome, "reason", res.Reason)
	}
	writeResult(w, res)
}

// Update replaces a record by id. A stale id answers 200 without a record.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var rec model.Record
	if !decodeJSON(w, r, &rec) {
		return
	}
	rec.ID = r.PathValue("id")

	writeResult(w, h.journal.Update(r.Context(), rec))
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted := h.journal.Delete(r.Context(), r.PathValue("id"))
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
