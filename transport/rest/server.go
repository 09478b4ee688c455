package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

const (
	shutdownTimeout = 10 * time.Second
	corsMaxAge      = 300
)

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

// NewRouter - registers the game and stats routes. Browsers calling from
// allowedOrigins get CORS headers and answered preflights.
func NewRouter(logger *slog.Logger, uGame gameUseCase, allowedOrigins []string) http.Handler {
	h := &handlers{
		logger: logger,
		uGame:  uGame,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         corsMaxAge,
	}))

	r.Get("/ping", pingHandler)

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		// win log, same contract as the browser client expects
		r.Post("/games", h.recordResult)
		r.Get("/stats", h.stats)

		r.Route("/boards", func(r chi.Router) {
			r.Post("/", h.createGame)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getGame)
				r.Delete("/", h.deleteGame)
				r.Post("/turns", h.makeTurn)
			})
		})
	})

	return r
}

func New(logger *slog.Logger, port string, allowedOrigins []string, uGame gameUseCase) *Server {
	log := logger.With("component", "rest")

	return &Server{
		logger: log,
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           NewRouter(log, uGame, allowedOrigins),
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       30 * time.Second,
		},
	}
}

// Start - serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		that.logger.Info("Starting HTTP server", "addr", that.srv.Addr)
		if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	that.logger.Info("Shutting down HTTP server")
	if err := that.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
