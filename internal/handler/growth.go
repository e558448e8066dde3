package handler

import (
	"net/http"

	"github.com/dukerupert/maeumsee/internal/journal"
	"github.com/dukerupert/maeumsee/internal/model"
)

type GrowthHandler struct {
	journal *journal.Journal
}

func NewGrowthHandler(j *journal.Journal) *GrowthHandler {
	return &GrowthHandler{journal: j}
}

type growthResponse struct {
	journal.GrowthView
	SeedName string `json:"seedName"`
}

func (h *GrowthHandler) Growth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, growthResponse{
		GrowthView: h.journal.Growth(),
		SeedName:   h.journal.SeedName(),
	})
}

func (h *GrowthHandler) Blooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.journal.Blooms())
}

type statsResponse struct {
	model.Stats
	StreakDays int `json:"streakDays"`
}

func (h *GrowthHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsResponse{
		Stats:      h.journal.Stats(),
		StreakDays: h.journal.StreakDays(),
	})
}
