package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/maeumsee/internal/handler"
	"github.com/dukerupert/maeumsee/internal/journal"
	"github.com/dukerupert/maeumsee/internal/middleware"
	ws "github.com/dukerupert/maeumsee/internal/websocket"
)

const (
	backupLimit  = 5
	backupWindow = time.Minute
)

type Server struct {
	hub           *ws.Hub
	recordH       *handler.RecordHandler
	growthH       *handler.GrowthHandler
	forestH       *handler.ForestHandler
	notificationH *handler.NotificationHandler
	settingsH     *handler.SettingsHandler
	dataH         *handler.DataHandler
	rateLimiter   *middleware.RateLimiter
	logger        *slog.Logger
}

func New(j *journal.Journal, hub *ws.Hub, logger *slog.Logger) *Server {
	return &Server{
		hub:           hub,
		recordH:       handler.NewRecordHandler(j, logger.With("component", "record")),
		growthH:       handler.NewGrowthHandler(j),
		forestH:       handler.NewForestHandler(j),
		notificationH: handler.NewNotificationHandler(j),
		settingsH:     handler.NewSettingsHandler(j),
		dataH:         handler.NewDataHandler(j, logger.With("component", "data")),
		rateLimiter:   middleware.NewRateLimiter(backupLimit, backupWindow),
		logger:        logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	// Records
	mux.HandleFunc("GET /api/records", s.recordH.List)
	mux.HandleFunc("GET /api/records/date/{date}", s.recordH.GetByDate)
	mux.HandleFunc("PUT /api/records/daily", s.recordH.SaveDaily)
	mux.HandleFunc("PUT /api/records/{id}", s.recordH.Update)
	mux.HandleFunc("DELETE /api/records/{id}", s.recordH.Delete)

	// Growth
	mux.HandleFunc("GET /api/growth", s.growthH.Growth)
	mux.HandleFunc("GET /api/blooms", s.growthH.Blooms)
	mux.HandleFunc("GET /api/stats", s.growthH.Stats)

	// Empathy forest
	mux.HandleFunc("GET /api/forest", s.forestH.Feed)
	mux.HandleFunc("POST /api/forest/{id}/like", s.forestH.Like)
	mux.HandleFunc("POST /api/forest/{id}/report", s.forestH.Report)
	mux.HandleFunc("GET /api/forest/{id}/share", s.forestH.Share)

	// Notifications
	mux.HandleFunc("GET /api/notifications", s.notificationH.List)
	mux.HandleFunc("POST /api/notifications/read-all", s.notificationH.ReadAll)

	// Settings
	mux.HandleFunc("GET /api/settings", s.settingsH.Get)
	mux.HandleFunc("PATCH /api/settings", s.settingsH.Patch)
	mux.HandleFunc("PUT /api/seed-name", s.settingsH.SetSeedName)
	mux.HandleFunc("PUT /api/profile-image", s.settingsH.SetProfileImage)

	// Export, backup and reset
	mux.HandleFunc("GET /api/export/json", s.dataH.ExportJSON)
	mux.HandleFunc("GET /api/export/csv", s.dataH.ExportCSV)
	mux.Handle("POST /api/backup", s.rateLimited(s.dataH.Backup))
	mux.Handle("POST /api/restore", s.rateLimited(s.dataH.Restore))
	mux.HandleFunc("DELETE /api/data", s.dataH.Clear)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimited(h http.HandlerFunc) http.Handler {
	return middleware.RateLimit(s.rateLimiter)(h)
}
