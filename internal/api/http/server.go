package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"order-up/internal/adapter/broker"
	"order-up/internal/adapter/store"
	"order-up/internal/api/http/handle"
	"order-up/internal/app/core"
	"order-up/internal/app/services"
	"order-up/internal/config"
	"order-up/pkg/logger"
)

var ErrServerClosed = errors.New("server closed")

type Server struct {
	mux          *http.ServeMux
	cfg          *config.Config
	srv          *http.Server
	serverParams *core.ServerParams
	mylog        logger.Logger
	store        core.Store
	publisher    core.Publisher
	ctx          context.Context
	appCtx       context.Context
	mu           sync.Mutex
}

func NewServer(ctx, appCtx context.Context, cfg *config.Config, serverParams *core.ServerParams, mylog logger.Logger) *Server {
	return &Server{
		ctx:          ctx,
		appCtx:       appCtx,
		cfg:          cfg,
		serverParams: serverParams,
		mylog:        mylog,
		mux:          http.NewServeMux(),
	}
}

// Run initializes the store and the optional event publisher, wires the
// routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_starting")

	if err := s.initializeStore(); err != nil {
		mylog.Action("store_init_failed").Error("Failed to initialize store", err)
		return err
	}
	mylog.Action("store_ready").Info("Store ready", "backend", s.cfg.Store.Backend)

	if s.cfg.RMQ.Enabled {
		if err := s.initializePublisher(); err != nil {
			mylog.Action("mb_connection_failed").Error("Failed to connect to message broker", err)
			return err
		}
		mylog.Action("mb_connected").Info("Successful message broker connection")
	}

	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.serverParams.Port),
		Handler: s.withMiddleware(s.mux),
	}
	s.mu.Unlock()

	mylog.Info("server is running", "port", s.serverParams.Port)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the listener down gracefully and releases the store and broker.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Action("graceful_shutdown_started").Info("Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, core.WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Action("graceful_shutdown_failed").Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.mylog.Action("store_close_failed").Error("Failed to close store", err)
			return fmt.Errorf("store close: %w", err)
		}
		s.mylog.Action("store_closed").Info("Store closed")
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.mylog.Action("mb_close_failed").Error("Failed to close message broker", err)
			return fmt.Errorf("mb close: %w", err)
		}
		s.mylog.Action("mb_closed").Info("Message broker closed")
	}

	s.mylog.Action("graceful_shutdown_completed").Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) initializeStore() error {
	st, err := store.New(s.appCtx, s.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	s.store = st
	return nil
}

func (s *Server) initializePublisher() error {
	pub, err := broker.New(s.cfg.RMQ, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.publisher = pub
	return nil
}

// Configure sets up the collection managers and registers the API routes.
func (s *Server) Configure() {
	usersService := services.NewUsersService(s.store, s.mylog)
	menuService := services.NewMenuService(s.store, s.mylog)
	ordersService := services.NewOrdersService(s.store, s.publisher, s.mylog)

	usersHandler := handle.NewUsersHandler(usersService, s.mylog)
	menuHandler := handle.NewMenuHandler(menuService, s.mylog)
	ordersHandler := handle.NewOrdersHandler(ordersService, s.mylog)

	s.mux.Handle("POST /api/register", usersHandler.Register())
	s.mux.Handle("POST /api/login", usersHandler.Login())
	s.mux.Handle("GET /api/menu", menuHandler.List())
	s.mux.Handle("POST /api/menu", menuHandler.Add())
	s.mux.Handle("PUT /api/menu/{id}", menuHandler.Update())
	s.mux.Handle("DELETE /api/menu/{id}", menuHandler.Delete())
	s.mux.Handle("POST /api/orders", ordersHandler.Submit())
	s.mux.Handle("GET /api/health", handle.Health())
}
