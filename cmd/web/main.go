package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"cardd/internal/app"
	"cardd/internal/config"
	"cardd/internal/flashcard"
	"cardd/internal/handlers"
	"cardd/internal/imagestore"
	"cardd/internal/platform/logger"
	"cardd/pkg/realtime"
)

func main() {
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	log := logger.New(cfg.Server)

	policy, err := flashcard.ParsePolicy(cfg.Cards.Policy)
	if err != nil {
		log.WithError(err).Fatal("invalid flashcard policy")
	}

	state := app.New(flashcard.NewRepository(policy), app.Options{
		SessionSize:   cfg.Quiz.SessionSize,
		FeedbackDelay: cfg.Quiz.FeedbackDelay,
		Scheduler:     realtime.NewScheduler(clockwork.NewRealClock()),
		Logger:        log,
	})
	images := imagestore.New(cfg.Uploads.MaxBytes)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log, NoColor: true}))
	r.Use(middleware.Recoverer)

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		log.WithError(err).Fatal("failed to open embedded static files")
	}
	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))

	handler := handlers.NewHandler(state, images, log)
	// The SSE stream must outlive the request timeout applied to everything else.
	handler.RegisterStream(r)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		handler.RegisterRoutes(r)
	})

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":          addr,
			"session_size":  cfg.Quiz.SessionSize,
			"card_policy":   policy,
			"feedback_wait": cfg.Quiz.FeedbackDelay.String(),
		}).Infof("cardd listening on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

//go:embed static
var embeddedStatic embed.FS
