package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/maeumsee/internal/backup"
	"github.com/dukerupert/maeumsee/internal/export"
	"github.com/dukerupert/maeumsee/internal/journal"
)

// PassphraseHeader carries the backup passphrase on restore, whose body is
// the raw sealed file.
const PassphraseHeader = "X-Backup-Passphrase"

const maxBackupBytes = 32 << 20

type DataHandler struct {
	journal *journal.Journal
	logger  *slog.Logger
}

func NewDataHandler(j *journal.Journal, logger *slog.Logger) *DataHandler {
	return &DataHandler{journal: j, logger: logger}
}

func (h *DataHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := export.ToJSON(h.journal.Records())
	if err != nil {
		h.logger.Error("export json", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export records")
		return
	}
	attachment(w, "application/json", h.filename("json"))
	w.Write(data)
}

func (h *DataHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	attachment(w, "text/csv; charset=utf-8", h.filename("csv"))
	io.WriteString(w, export.ToCSV(h.journal.Records()))
}

type backupRequest struct {
	Passphrase string `json:"passphrase"`
}

// Backup returns the whole state sealed with the caller's passphrase.
func (h *DataHandler) Backup(w http.ResponseWriter, r *http.Request) {
	var req backupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Passphrase) == "" {
		writeError(w, http.StatusBadRequest, "passphrase is required")
		return
	}

	snapshot, err := h.journal.Snapshot()
	if err != nil {
		h.logger.Error("snapshot state", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create backup")
		return
	}
	sealed, err := backup.Seal(snapshot, req.Passphrase)
	if err != nil {
		h.logger.Error("seal backup", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create backup")
		return
	}

	attachment(w, "application/octet-stream", h.filename("backup"))
	w.Write(sealed)
}

func (h *DataHandler) Restore(w http.ResponseWriter, r *http.Request) {
	passphrase := r.Header.Get(PassphraseHeader)
	if strings.TrimSpace(passphrase) == "" {
		writeError(w, http.StatusBadRequest, "passphrase is required")
		return
	}

	sealed, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBackupBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read backup")
		return
	}
	plain, err := backup.Open(sealed, passphrase)
	if err != nil {
		h.logger.Warn("open backup", "error", err)
		writeError(w, http.StatusUnprocessableEntity, "wrong passphrase or damaged backup")
		return
	}
	if err := h.journal.Restore(r.Context(), plain); err != nil {
		h.logger.Warn("restore state", "error", err)
		writeError(w, http.StatusUnprocessableEntity, "backup does not contain a journal")
		return
	}
	writeJSON(w, http.StatusOK, h.journal.Stats())
}

// Clear wipes every record, bloom, notification and setting.
func (h *DataHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.journal.ClearAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *DataHandler) filename(ext string) string {
	return fmt.Sprintf("maeumsee-%s.%s", h.journal.Today(), ext)
}

func attachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
