package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/amilz/tap-cash/internal/backend/application"
	"github.com/amilz/tap-cash/internal/backend/infrastructure/chain"
	httpwrap "github.com/amilz/tap-cash/internal/backend/infrastructure/http"
	"github.com/amilz/tap-cash/internal/backend/infrastructure/postgres"
	"github.com/amilz/tap-cash/internal/backend/infrastructure/processor"
	"github.com/amilz/tap-cash/internal/backend/worker"
	"github.com/amilz/tap-cash/internal/pkg/database"
	"github.com/amilz/tap-cash/internal/pkg/logging"
	"github.com/amilz/tap-cash/internal/pkg/retry"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 5 * time.Second
)

type BackendApp struct {
	cfg    BackendConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewBackendApp(cfg BackendConfig, logger logging.Logger) *BackendApp {
	return &BackendApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *BackendApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	dbpool, err := pgxpool.New(ctx, cfg.DbSettings.GetUrl())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, logger)

	sagaStore := postgres.NewSagaStore(dbpool, txManager, logger)
	directory := postgres.NewAccountDirectory(dbpool)

	processorClient := processor.NewClient(cfg.ProcessorBaseURL, cfg.ProcessorApiKey, logger)
	chainClient := chain.NewClient(cfg.ChainBaseURL, logger)

	orchestrator := application.NewDepositAndSendCase(
		sagaStore,
		directory,
		directory,
		processorClient,
		chainClient,
		retry.DefaultPolicy(),
		cfg.MaxTxAmount,
		logger,
	)
	statusCase := application.NewStatusCase(sagaStore)
	memberInfoCase := application.NewMemberInfoCase(directory)
	reconcileCase := application.NewReconcileCase(sagaStore, orchestrator, cfg.MaxReconcileAttempts, cfg.ReconcileRetryDelay, cfg.StaleSagaAfter, logger)

	router := gin.Default()

	sendHandler := httpwrap.NewSendHandler(orchestrator, statusCase, logger)
	memberHandler := httpwrap.NewMemberHandler(memberInfoCase)

	api := router.Group("/api")
	{
		api.POST("/send", sendHandler.Send)
		api.GET("/send/:"+httpwrap.SagaIdKey, sendHandler.GetStatus)
		api.GET("/members/:"+httpwrap.EmailKey, memberHandler.GetMember)
	}

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	reconcileWorker := worker.NewReconcileWorker(reconcileCase, cfg.ReconcileInterval, logger)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting http server", "port", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("error while starting http server: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		return reconcileWorker.Run(groupCtx)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- group.Wait()
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *BackendApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	a.dbpool.Close()
	a.logger.Info("server stopped")
}
