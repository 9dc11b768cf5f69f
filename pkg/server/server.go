package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	insighthandler "github.com/fin-tools/finsight/pkg/handlers/insight"
	"github.com/fin-tools/finsight/pkg/models/domain"
	finsightmiddleware "github.com/fin-tools/finsight/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Company  domain.CompanyProfile
	Reasoner insighthandler.Reasoner
	Chat     insighthandler.Chat
	Alerts   insighthandler.Alerts
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the insight endpoints under /api/v1. Split from
// WebAPI so tests can mount the router on httptest servers.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	handler := insighthandler.NewHandler(deps.Company, deps.Reasoner, deps.Chat, deps.Alerts)

	router := chi.NewRouter()
	router.Use(finsightmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1/companies/{company}", func(r chi.Router) {
		r.Get("/report", handler.GetReport)
		r.Post("/chat", handler.PostChat)
		r.Get("/nudges", handler.GetNudges)
		r.Get("/alerts", handler.GetAlerts)
		r.Post("/alerts/evaluate", handler.EvaluateAlerts)
	})

	return router
}

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	return &WebAPI{
		router: router,
		logger: &config.Dependencies.Logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
