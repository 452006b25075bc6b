package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errEnvVarInvalid  error = errors.New("environment variable is invalid")
)

const (
	apiPortEnvKey      = "API_PORT"
	solanaRPCEnvKey    = "SOLANA_RPC_URL"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	feePayerKeyEnvKey  = "FEE_PAYER_PRIVATE_KEY"
	clusterEnvKey      = "SOLANA_CLUSTER"
	pollIntervalEnvKey = "POLL_INTERVAL"
	pollAttemptsEnvKey = "POLL_ATTEMPTS"
	rateLimitEnvKey    = "TRANSFER_RATE_LIMIT"
)

const (
	defaultCluster      = "mainnet-beta"
	defaultPollInterval = 500 * time.Millisecond
	defaultPollAttempts = 120
	defaultRateLimit    = 5.0
)

type App struct {
	Port               string
	NodeURL            string
	DBConnectionURL    string
	JWTSecret          string
	FeePayerPrivateKey string
	Cluster            string
	PollInterval       time.Duration
	PollAttempts       int
	TransferRateLimit  float64
}

// ChainID is the identifier stored with every ledger entry written for this cluster.
func (a App) ChainID() string {
	return "solana:" + a.Cluster
}

func NewAppConfig() (App, error) {
	app := App{
		Cluster:           defaultCluster,
		PollInterval:      defaultPollInterval,
		PollAttempts:      defaultPollAttempts,
		TransferRateLimit: defaultRateLimit,
	}

	required := []struct {
		key  string
		dest *string
	}{
		{apiPortEnvKey, &app.Port},
		{solanaRPCEnvKey, &app.NodeURL},
		{dbConnEnvKey, &app.DBConnectionURL},
		{jwtSecretEnvKey, &app.JWTSecret},
		{feePayerKeyEnvKey, &app.FeePayerPrivateKey},
	}
	for _, env := range required {
		value, ok := os.LookupEnv(env.key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, env.key)
		}
		*env.dest = value
	}

	if cluster, ok := os.LookupEnv(clusterEnvKey); ok && cluster != "" {
		app.Cluster = cluster
	}

	if raw, ok := os.LookupEnv(pollIntervalEnvKey); ok {
		interval, err := time.ParseDuration(raw)
		if err != nil || interval <= 0 {
			return App{}, fmt.Errorf("%w: %s", errEnvVarInvalid, pollIntervalEnvKey)
		}
		app.PollInterval = interval
	}

	if raw, ok := os.LookupEnv(pollAttemptsEnvKey); ok {
		attempts, err := strconv.Atoi(raw)
		if err != nil || attempts <= 0 {
			return App{}, fmt.Errorf("%w: %s", errEnvVarInvalid, pollAttemptsEnvKey)
		}
		app.PollAttempts = attempts
	}

	if raw, ok := os.LookupEnv(rateLimitEnvKey); ok {
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil || limit <= 0 {
			return App{}, fmt.Errorf("%w: %s", errEnvVarInvalid, rateLimitEnvKey)
		}
		app.TransferRateLimit = limit
	}

	return app, nil
}
