package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"

	EnvProcessorBaseURL = "PROCESSOR_BASE_URL"
	EnvProcessorApiKey  = "PROCESSOR_API_KEY"
	EnvChainBaseURL     = "CHAIN_BASE_URL"

	EnvMaxTxAmount          = "MAX_TX_AMOUNT"
	EnvReconcileInterval    = "RECONCILE_INTERVAL"
	EnvMaxReconcileAttempts = "MAX_RECONCILE_ATTEMPTS"
	EnvReconcileRetryDelay  = "RECONCILE_RETRY_DELAY"
	EnvStaleSagaAfter       = "STALE_SAGA_AFTER"
)
