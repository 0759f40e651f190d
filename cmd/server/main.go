package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/synergysphere/backend/api/handler"
	"github.com/synergysphere/backend/internal/config"
	"github.com/synergysphere/backend/internal/journal"
	"github.com/synergysphere/backend/internal/middleware"
	"github.com/synergysphere/backend/internal/monitor"
	"github.com/synergysphere/backend/internal/router"
	"github.com/synergysphere/backend/internal/services"
	"github.com/synergysphere/backend/internal/services/lifecycle"
	"github.com/synergysphere/backend/pkg/httpcontext"
	"github.com/synergysphere/backend/pkg/logger"
	"github.com/synergysphere/backend/repository/memory"
	authUC "github.com/synergysphere/backend/usecase/auth"
	workspaceUC "github.com/synergysphere/backend/usecase/workspace"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store := memory.NewStore()
	if cfg.Store.Seed {
		if err := store.Seed(); err != nil {
			zapLogger.Fatal("seeding failed", zap.Error(err))
		}
		zapLogger.Info("demo fixtures loaded")
	}

	activityJournal, err := journal.Open(cfg.Journal.Path, "activity")
	if err != nil {
		zapLogger.Fatal("failed to open activity journal", zap.Error(err))
	}
	manager.RegisterCloser("journal", activityJournal)

	mon := monitor.New(store, activityJournal, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	sweeper := services.NewJournalSweeper(activityJournal, zapLogger, services.SweeperConfig{
		Interval:  cfg.Journal.SweepInterval,
		Retention: cfg.Journal.Retention,
	})
	sweeper.Start()
	manager.Register("journal_sweeper", func(ctx context.Context) error {
		sweeper.Stop(ctx)
		return nil
	})

	userRepo := memory.NewUserRepository(store)
	projectRepo := memory.NewProjectRepository(store)
	taskRepo := memory.NewTaskRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)

	activityLog := services.NewActivityLog(activityJournal, zapLogger)

	authUseCase := authUC.New(userRepo, activityLog, zapLogger, authUC.Config{
		JWTSecret:  cfg.Auth.JWTSecret,
		JWTIssuer:  cfg.Auth.JWTIssuer,
		TokenTTL:   cfg.Auth.TokenTTL,
		LoginDelay: cfg.Auth.LoginDelay,
	})
	workspaceUseCase := workspaceUC.New(userRepo, projectRepo, taskRepo, notificationRepo, activityLog, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:         apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Project:      apiHandler.NewProjectHandler(workspaceUseCase, ctxAdapter, zapLogger),
		Task:         apiHandler.NewTaskHandler(workspaceUseCase, ctxAdapter, zapLogger),
		Notification: apiHandler.NewNotificationHandler(workspaceUseCase, ctxAdapter, zapLogger),
		Health:       apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.Auth.JWTSecret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
