package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amilz/tap-cash/internal/backend/bootstrap"
	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/database"
	"github.com/amilz/tap-cash/internal/pkg/env"
	"github.com/amilz/tap-cash/internal/pkg/logging"
	"github.com/amilz/tap-cash/migrations"
	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	_ = godotenv.Load()

	httpPort := ":8080"
	processorBaseURL := "http://localhost:7001"
	processorApiKey := ""
	chainBaseURL := "http://localhost:7002"

	maxTxAmount := int64(1_000_00)
	reconcileInterval := 30 * time.Second
	maxReconcileAttempts := 5
	reconcileRetryDelay := time.Minute
	staleSagaAfter := 5 * time.Minute

	databaseSettings := database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		Host:       "localhost",
		Port:       "5432",
		DBName:     "tapcash_db",
		SSlEnabled: false,
	}

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvProcessorBaseURL, &processorBaseURL)
	env.TrySetFromEnv(env.EnvProcessorApiKey, &processorApiKey)
	env.TrySetFromEnv(env.EnvChainBaseURL, &chainBaseURL)
	env.TrySetInt64FromEnv(env.EnvMaxTxAmount, &maxTxAmount)
	env.TrySetDurationFromEnv(env.EnvReconcileInterval, &reconcileInterval)
	env.TrySetIntFromEnv(env.EnvMaxReconcileAttempts, &maxReconcileAttempts)
	env.TrySetDurationFromEnv(env.EnvReconcileRetryDelay, &reconcileRetryDelay)
	env.TrySetDurationFromEnv(env.EnvStaleSagaAfter, &staleSagaAfter)

	env.TrySetFromEnv(env.EnvDatabaseHost, &databaseSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &databaseSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &databaseSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &databaseSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &databaseSettings.DBName)

	if err := database.MigrateDatabase(databaseSettings.GetUrl(), migrations.FS, ".", "pgx", "postgres"); err != nil {
		defaultLogger.Error("failed to migrate database", "error", err.Error())
		return
	}

	app := bootstrap.NewBackendApp(bootstrap.BackendConfig{
		DbSettings: databaseSettings,
		HttpPort:   httpPort,

		ProcessorBaseURL: processorBaseURL,
		ProcessorApiKey:  processorApiKey,
		ChainBaseURL:     chainBaseURL,

		MaxTxAmount:          domain.Money(maxTxAmount),
		ReconcileInterval:    reconcileInterval,
		MaxReconcileAttempts: maxReconcileAttempts,
		ReconcileRetryDelay:  reconcileRetryDelay,
		StaleSagaAfter:       staleSagaAfter,
	}, defaultLogger)

	go func() {
		if err := app.Run(mainCtx); err != nil {
			defaultLogger.Error("application stopped with error", "error", err.Error())
			stop()
		}
	}()

	<-mainCtx.Done()
	app.Shutdown()
}
