package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"solpay/internal/config"
	"solpay/internal/core"
	"solpay/internal/db"
	"solpay/internal/http/handler"
	"solpay/internal/http/handler/middleware"
	"solpay/internal/http/payload"
	"solpay/internal/http/server"
	"solpay/internal/repository"
	"solpay/internal/solana"
	"solpay/pkg/jwt"
	"solpay/pkg/log"
	"strings"
	"syscall"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("solpay", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	feePayer, err := solanago.PrivateKeyFromBase58(config.FeePayerPrivateKey)
	if err != nil {
		logger.Errorw("failed to parse fee payer key", "error", err)
		return fmt.Errorf("parse fee payer key: %w", err)
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewLedgerRepository(dbConn)

	err = repo.Migrate()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// solana
	client := rpc.New(config.NodeURL)
	solanaService := solana.NewService(
		logger,
		client,
		feePayer,
		config.PollInterval,
		config.PollAttempts)

	logger.Infow("solana service ready",
		"cluster", config.Cluster,
		"fee_payer", solanaService.FeePayer().String())

	// ledger
	ledger := core.NewLedger(
		logger,
		repo,
		solanaService,
		config.ChainID())

	// handler
	ledgerHlr := handler.NewLedgerHandler(
		logger,
		payload.Decoder{},
		ledger)

	// middleware
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))
	auth := middleware.NewAuthMiddleware(logger, jwtService)
	limiter := middleware.NewRateLimitMiddleware(logger, config.TransferRateLimit, int(config.TransferRateLimit)+1, time.Second)

	router := mux.NewRouter()
	router.Use(middleware.NewMetricsMiddleware().Metrics)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// register routes
	route(router, handler.CreateUser, ledgerHlr.HandleCreateUser)
	route(router, handler.ListUsers, ledgerHlr.HandleListUsers)
	route(router, handler.GetUser, ledgerHlr.HandleGetUser)
	route(router, handler.UpdateUser, ledgerHlr.HandleUpdateUser)
	route(router, handler.ListUserTransactions, ledgerHlr.HandleListUserTransactions)
	route(router, handler.ResolveIdentifier, ledgerHlr.HandleResolveIdentifier)
	route(router, handler.CreateLedgerEntry, ledgerHlr.HandleCreateLedgerEntry)
	route(router, handler.GetTransactions, ledgerHlr.HandleGetTransactions)
	route(router, handler.GetTransaction, ledgerHlr.HandleGetTransaction)
	route(router, handler.UpdateTransactionStatus, ledgerHlr.HandleUpdateTransactionStatus)

	transfer := auth.Authenticate(limiter.Limit(http.HandlerFunc(ledgerHlr.HandleSubmitTransfer)))
	method, path := splitRoute(handler.SubmitTransfer)
	router.Handle(path, transfer).Methods(method)

	hdlr := middleware.NewLoggingMiddleware(logger).Logging(router)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// a transfer holds its request open for the whole confirmation budget, on shutdown too
	transferBudget := config.PollInterval*time.Duration(config.PollAttempts) + 30*time.Second

	srv := server.NewHTTP(logger, hdlr, config.Port, transferBudget, transferBudget)
	return run(srv)
}

func route(router *mux.Router, pattern string, fn http.HandlerFunc) {
	method, path := splitRoute(pattern)
	router.HandleFunc(path, fn).Methods(method)
}

// splitRoute splits a "METHOD /path" pattern.
func splitRoute(pattern string) (string, string) {
	method, path, _ := strings.Cut(pattern, " ")
	return method, path
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
