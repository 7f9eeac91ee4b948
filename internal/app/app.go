// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/mhladky/teamchat-backend/internal/adapter/postgres"
	messagerepo "github.com/mhladky/teamchat-backend/internal/adapter/postgres/message"
	roomrepo "github.com/mhladky/teamchat-backend/internal/adapter/postgres/room"
	topicrepo "github.com/mhladky/teamchat-backend/internal/adapter/postgres/topic"
	userrepo "github.com/mhladky/teamchat-backend/internal/adapter/postgres/user"
	"github.com/mhladky/teamchat-backend/internal/auth"
	"github.com/mhladky/teamchat-backend/internal/config"
	"github.com/mhladky/teamchat-backend/internal/service/draft"
	"github.com/mhladky/teamchat-backend/internal/service/message"
	"github.com/mhladky/teamchat-backend/internal/service/room"
	"github.com/mhladky/teamchat-backend/internal/service/topic"
	"github.com/mhladky/teamchat-backend/internal/service/user"
	"github.com/mhladky/teamchat-backend/internal/transport/middleware"
	"github.com/mhladky/teamchat-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and serves HTTP until the process
// receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	txManager := postgres.NewTxManager(pool)
	topicRepo := topicrepo.New(pool)
	messageRepo := messagerepo.New(pool)
	roomRepo := roomrepo.New(pool)
	userRepo := userrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	userSvc := user.NewService(logger, userRepo, jwtManager)
	roomSvc := room.NewService(logger, roomRepo, userRepo, txManager)
	topicSvc := topic.NewService(logger, topicRepo, messageRepo, roomRepo, txManager)
	messageSvc := message.NewService(logger, messageRepo, topicRepo, roomRepo, txManager)
	draftSvc := draft.NewService(logger, topicRepo, messageRepo, roomRepo, cfg.Draft)

	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(userSvc, logger),
		Room:    rest.NewRoomHandler(roomSvc, logger),
		Topic:   rest.NewTopicHandler(topicSvc, draftSvc, logger),
		Message: rest.NewMessageHandler(messageSvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	router := rest.NewRouter(handlers, middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")

	return nil
}
