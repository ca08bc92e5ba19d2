package rest

import (
	"context"
	"fmt"
	"net/http"

	core_port "listing-lifecycle-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
func NewServer(port string, handlers *ListingsHandler, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-ID", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Группа роутов для нашего API. Все они приватные, за API Gateway.
	r.Route("/api/v1/listings", func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Get("/", handlers.GetListings)
		r.Post("/", handlers.CreateListing)

		r.Route("/{listingID}", func(r chi.Router) {
			r.Get("/", handlers.GetListing)
			r.Delete("/", handlers.RemoveListing)

			r.Put("/basic-info", handlers.UpdateBasicInfo)
			r.Put("/images", handlers.UpdateImages)
			r.Put("/coordinates", handlers.UpdateCoordinates)
			r.Put("/features", handlers.UpdateFeatures)
			r.Post("/publish", handlers.PublishListing)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
