package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/authpix/apiserver/config"
	"github.com/authpix/apiserver/internal/events"
	"github.com/authpix/apiserver/internal/handlers"
	"github.com/authpix/apiserver/internal/services"
	"github.com/authpix/apiserver/internal/storage"
	"github.com/authpix/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	emitter    *events.Emitter
}

// New constructs a Server, wiring the configured user store, object storage
// and event broker into the auth handlers.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	userRepo, err := newUserRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("user store init: %w", err)
	}

	backend, err := newObjectStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("object storage init: %w", err)
	}

	emitter, err := newEmitter(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("events init: %w", err)
	}

	handler := handlers.NewAuthHandler(
		services.NewUserService(userRepo),
		storage.NewStorage(backend),
		emitter,
		logger,
	)

	router := NewRouter(handler)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		emitter:    emitter,
	}, nil
}

// NewRouter assembles the chi router: middleware, CORS, the three auth
// routes and the 404/405 fallbacks.
func NewRouter(handler *handlers.AuthHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
		corsHeaders,
	)

	router.NotFound(handlers.NotFound)
	router.MethodNotAllowed(handlers.MethodNotAllowed)
	handlers.AuthRouter(router, handler)

	return router
}

// corsHeaders sets the fixed CORS header set on every response, including
// errors, and short-circuits OPTIONS preflight requests with a bodyless 204.
func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.emitter != nil {
		_ = s.emitter.Close()
	}
	return s.httpServer.Close()
}

func newUserRepository(ctx context.Context, cfg config.Config) (services.UserRepository, error) {
	switch cfg.UserStore {
	case "", "dynamodb":
		return store.NewDynamoUserRepository(ctx, cfg.Dynamo)
	case "redis":
		return store.NewRedisUserRepository(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown user store backend: %q", cfg.UserStore)
	}
}

func newObjectStorage(ctx context.Context, cfg config.Config) (storage.ObjectStorage, error) {
	switch cfg.StorageBackend {
	case "", "s3":
		return storage.NewS3Client(ctx, cfg.S3)
	case "minio":
		return storage.NewMinioClient(cfg.Minio)
	case "gcs":
		return storage.NewGCSClient(ctx, cfg.GCS)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.StorageBackend)
	}
}

func newEmitter(ctx context.Context, cfg config.Config, logger *slog.Logger) (*events.Emitter, error) {
	switch cfg.EventsBackend {
	case "":
		return events.NewEmitter(events.NoopPublisher{}, logger), nil
	case "rabbitmq":
		publisher, err := events.NewRabbitMQPublisher(cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		return events.NewEmitter(publisher, logger), nil
	case "pubsub":
		publisher, err := events.NewPubSubPublisher(ctx, cfg.PubSub)
		if err != nil {
			return nil, err
		}
		return events.NewEmitter(publisher, logger), nil
	default:
		return nil, fmt.Errorf("unknown events backend: %q", cfg.EventsBackend)
	}
}
