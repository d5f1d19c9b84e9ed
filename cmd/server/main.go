package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frame-sequencer/internal/animation"
	"frame-sequencer/internal/platform/config"
	"frame-sequencer/internal/platform/logger"
	"frame-sequencer/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	port := config.GetEnv("PORT", "8080")
	logLevel := config.GetEnv("LOG_LEVEL", "info")
	logFormat := config.GetEnv("LOG_FORMAT", "json")
	storeDriver := config.GetEnv("STORE_DRIVER", "memory")
	sqlitePath := config.GetEnv("SQLITE_PATH", "frames.db")
	animationsFile := config.GetEnv("ANIMATIONS_FILE", "")
	maxFrameCount := config.GetEnvInt("MAX_FRAME_COUNT", animation.DefaultMaxFrameCount)

	log := logger.New(logLevel, logFormat)

	store, closeStore, err := openStore(storeDriver, sqlitePath)
	if err != nil {
		log.Error("open store failed", "driver", storeDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	repo := animation.NewRepositoryWithStore(store)
	svc := animation.NewService(repo, animation.UUIDv7(), animation.WithMaxFrameCount(maxFrameCount))
	met := metrics.New()
	h := animation.NewHandler(svc, log, met)

	if animationsFile != "" {
		n, err := preload(svc, animationsFile)
		if err != nil {
			log.Error("preload animations failed", "file", animationsFile, "error", err)
			os.Exit(1)
		}
		log.Info("animations preloaded", "file", animationsFile, "registered", n)
	}

	r := chi.NewRouter()
	r.Use(logger.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		met.Handler(func() {
			if n, err := svc.Count(); err == nil {
				met.SetAnimations(n)
			}
		}).ServeHTTP(w, r)
	})
	h.Routes(r)

	addr := ":" + port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", port,
		"store", storeDriver,
		"max_frame_count", svc.MaxFrameCount(),
		"log_level", logLevel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

func openStore(driver, sqlitePath string) (animation.Store, func(), error) {
	if driver != "sqlite" {
		return animation.NewInMemoryStore(), func() {}, nil
	}
	s, err := animation.OpenSQLiteStore(sqlitePath)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { s.Close() }, nil
}

func preload(svc *animation.Service, path string) (int, error) {
	entries, err := config.LoadAnimations(path)
	if err != nil {
		return 0, err
	}
	reqs := make([]animation.RegisterRequest, 0, len(entries))
	for _, e := range entries {
		reqs = append(reqs, animation.RegisterRequest{
			ID:         animation.AnimationID(e.ID),
			FramePath:  e.FramePath,
			FrameCount: e.FrameCount,
		})
	}
	return svc.Preload(reqs)
}
