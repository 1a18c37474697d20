package bootstrap

import (
	"time"

	"github.com/amilz/tap-cash/internal/backend/domain"
	"github.com/amilz/tap-cash/internal/pkg/database"
)

type BackendConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string

	ProcessorBaseURL string
	ProcessorApiKey  string
	ChainBaseURL     string

	MaxTxAmount          domain.Money
	ReconcileInterval    time.Duration
	MaxReconcileAttempts int
	ReconcileRetryDelay  time.Duration
	StaleSagaAfter       time.Duration
}
