package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bibbank/cibil-service/pkg/auth"
	"github.com/bibbank/cibil-service/pkg/kafka"
	"github.com/bibbank/cibil-service/pkg/observability"
	"github.com/bibbank/cibil-service/pkg/postgres"

	"github.com/bibbank/cibil-service/internal/application/usecase"
	"github.com/bibbank/cibil-service/internal/domain/service"
	"github.com/bibbank/cibil-service/internal/infrastructure/config"
	"github.com/bibbank/cibil-service/internal/infrastructure/messaging"
	infraPostgres "github.com/bibbank/cibil-service/internal/infrastructure/postgres"
	grpcPresentation "github.com/bibbank/cibil-service/internal/presentation/grpc"
	"github.com/bibbank/cibil-service/internal/presentation/rest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cibil-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("starting cibil-service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
		"environment", cfg.Environment,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Metrics exporter; the handler is mounted on the HTTP mux below.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "cibil-service",
	})
	if err != nil {
		return fmt.Errorf("initialize metrics: %w", err)
	}

	// Database pool.
	dbCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		MaxConns: cfg.DB.MaxConns,
		MinConns: cfg.DB.MinConns,
	}
	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()
	logger.Info("database pool created")

	// Run database migrations.
	if migErr := postgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Kafka producer.
	kafkaCfg := kafka.Config{
		Brokers:       cfg.Kafka.Brokers,
		ConsumerGroup: cfg.Kafka.ConsumerGroup,
	}
	kafkaProducer := kafka.NewProducer(kafkaCfg)
	defer kafkaProducer.Close()
	logger.Info("kafka producer created")

	// Repositories.
	customerRepo := infraPostgres.NewCustomerRepository(pool)
	historyRepo := infraPostgres.NewHistoryRepository(pool)
	scoreRepo := infraPostgres.NewScoreRepository(pool)
	reportRepo := infraPostgres.NewReportRepository(pool)
	outboxRepo := infraPostgres.NewOutboxRepository(pool)

	// Events leave through the outbox; the relay delivers them to Kafka.
	publisher := messaging.NewOutboxPublisher(outboxRepo, logger)
	relay := messaging.NewOutboxRelay(
		outboxRepo,
		kafkaProducer,
		cfg.Kafka.EventsTopic,
		cfg.Outbox.PollInterval,
		cfg.Outbox.BatchSize,
		logger,
	)

	// Scoring engines, one per input mode.
	derivedEngine := service.NewEngine(service.DerivedPolicy())
	declarativeEngine := service.NewEngine(service.DeclarativePolicy())

	// Use cases.
	ingestCustomerData := usecase.NewIngestCustomerData(customerRepo, historyRepo, publisher)
	calculateScore := usecase.NewCalculateScore(customerRepo, historyRepo, scoreRepo, publisher, derivedEngine)
	scoreProfile := usecase.NewScoreProfile(declarativeEngine)
	getScoreHistory := usecase.NewGetScoreHistory(customerRepo, scoreRepo)
	getDashboard := usecase.NewGetDashboard(customerRepo, historyRepo, scoreRepo)
	generateReport := usecase.NewGenerateReport(customerRepo, scoreRepo, reportRepo, publisher)

	// Payment feed consumer.
	feedHandler := messaging.NewPaymentFeedHandler(customerRepo, historyRepo, logger)
	feedConsumer := kafka.NewConsumer(kafkaCfg, cfg.Kafka.PaymentFeedTopic, feedHandler.Handle, logger)
	defer feedConsumer.Close() //nolint:errcheck

	// JWT service for gRPC auth (validation-only: public key preferred,
	// secret as fallback).
	jwtCfg := auth.JWTConfig{Issuer: cfg.JWT.Issuer}
	switch {
	case cfg.JWT.PublicKeyFile != "":
		keyData, loadErr := auth.LoadKeyFromFile(cfg.JWT.PublicKeyFile)
		if loadErr != nil {
			return fmt.Errorf("load JWT public key file: %w", loadErr)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	case cfg.JWT.Secret != "":
		jwtCfg.Secret = cfg.JWT.Secret
	default:
		return fmt.Errorf("JWT_PUBLIC_KEY_FILE or JWT_SECRET must be set")
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		return fmt.Errorf("initialize JWT service: %w", err)
	}

	// gRPC server.
	handler := grpcPresentation.NewCIBILServiceHandler(
		ingestCustomerData,
		calculateScore,
		scoreProfile,
		getScoreHistory,
		getDashboard,
		generateReport,
		logger,
	)
	serverCfg := grpcPresentation.ServerConfig{
		Address:    cfg.GRPCAddress(),
		Reflection: cfg.GRPCReflection,
	}
	if cfg.TLS.Enabled {
		serverCfg.TLSCertFile = cfg.TLS.CertFile
		serverCfg.TLSKeyFile = cfg.TLS.KeyFile
	}
	grpcServer := grpcPresentation.NewServer(handler, serverCfg, logger, jwtSvc)

	// HTTP server: health probes and Prometheus metrics.
	healthHandler := rest.NewHealthHandler(pool, metricsHandler, logger)
	mux := http.NewServeMux()
	healthHandler.RegisterRoutes(mux)
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers and background workers.
	errCh := make(chan error, 4)

	go func() {
		errCh <- grpcServer.Start()
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go func() {
		if err := relay.Run(ctx); err != nil {
			errCh <- fmt.Errorf("outbox relay: %w", err)
		}
	}()

	go func() {
		if err := feedConsumer.Start(ctx); err != nil {
			errCh <- fmt.Errorf("payment feed consumer: %w", err)
		}
	}()

	// Graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error", "error", err)
		return err
	}

	// Shutdown sequence.
	logger.Info("shutting down")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	// Stop the relay and consumer, then flush any events still queued.
	cancel()
	if err := relay.Drain(shutdownCtx); err != nil {
		logger.Error("final outbox drain failed", "error", err)
	}

	logger.Info("cibil-service stopped")
	return nil
}
