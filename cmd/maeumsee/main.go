package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/dukerupert/maeumsee/internal/backup"
	"github.com/dukerupert/maeumsee/internal/config"
	"github.com/dukerupert/maeumsee/internal/database"
	"github.com/dukerupert/maeumsee/internal/journal"
	"github.com/dukerupert/maeumsee/internal/logging"
	"github.com/dukerupert/maeumsee/internal/reminder"
	"github.com/dukerupert/maeumsee/internal/server"
	"github.com/dukerupert/maeumsee/internal/store"
	ws "github.com/dukerupert/maeumsee/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	storage, closeStorage, err := openStorage(cfg)
	if err != nil {
		logger.Error("open storage", "error", err)
		os.Exit(1)
	}
	defer closeStorage()

	hub := ws.NewHub(logger)
	j := journal.New(storage, journal.Options{
		Strategy: cfg.GrowthStrategy,
		Location: cfg.Location,
		Logger:   logger.With("component", "journal"),
		OnChange: func(c journal.Change) {
			hub.Broadcast(ws.NewMessage(c.Entity, c.Action, c.ID, c.Score))
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	j.Load(ctx)

	if cfg.RestorePath != "" {
		if err := backup.LoadFrom(ctx, j, cfg.RestorePath, cfg.BackupPassphrase); err != nil {
			logger.Error("restore from file", "path", cfg.RestorePath, "error", err)
			os.Exit(1)
		}
		logger.Info("restored from file", "path", cfg.RestorePath)
	}

	reminders := reminder.NewScheduler(j, time.Minute, logger.With("component", "reminder"))
	reminders.Start(ctx)
	defer reminders.Stop()

	srv := server.New(j, hub, logger)
	go cleanupLoop(ctx, srv)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("maeumsee running",
			"addr", "http://"+cfg.Addr,
			"storage", cfg.Storage,
			"growth", cfg.GrowthStrategy.Name(),
			"tz", cfg.Location.String(),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	j.Save(shutdownCtx)

	if cfg.BackupPath != "" {
		if err := backup.SaveTo(j, cfg.BackupPath, cfg.BackupPassphrase); err != nil {
			logger.Error("backup to file", "path", cfg.BackupPath, "error", err)
		} else {
			logger.Info("backup written", "path", cfg.BackupPath)
		}
	}
}

func openStorage(cfg config.Config) (journal.Storage, func(), error) {
	if cfg.Storage == config.StorageFile {
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return store.NewKVStore(db), func() { db.Close() }, nil
}

func cleanupLoop(ctx context.Context, srv *server.Server) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			srv.RateLimiter().Cleanup()
			slog.Debug("rate limiter cleaned")
		case <-ctx.Done():
			return
		}
	}
}
