package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/audittax/audittax/gen/ent"
	auditv1 "github.com/audittax/audittax/gen/proto/audit/v1"
	"github.com/audittax/audittax/internal/auditor"
	"github.com/audittax/audittax/internal/common"
	"github.com/audittax/audittax/internal/export"
	repo "github.com/audittax/audittax/internal/repository"
	svc "github.com/audittax/audittax/internal/server"
)

func main() {
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	log := zlog.Sugar()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, cleanup, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer cleanup()

	if err := entc.Schema.Create(ctx); err != nil {
		log.Fatalf("migrating schema: %v", err)
	}

	auditRepo := repo.NewAuditRepository(entc, logger)
	engine := auditor.NewHTTPEngine(cfg.Engine.URL, cfg.Engine.APIKey, &http.Client{Timeout: cfg.Engine.Timeout}, logger)
	hub := svc.NewHub()
	reports := export.NewService(cfg.Server.ReportsDir, logger)
	runner := svc.NewRunner(auditRepo, engine, hub, reports, zlog)
	service := svc.NewAuditService(ctx, auditRepo, runner, hub, zlog)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listening on %s: %v", cfg.Server.GRPCAddr, err)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.UnaryRequestID(zlog)),
		grpc.StreamInterceptor(svc.StreamRequestID(zlog)),
	)
	auditv1.RegisterAuditServiceServer(grpcServer, service)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	log.Infow("audittaxd listening", "addr", cfg.Server.GRPCAddr, "engine", cfg.Engine.URL)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("gRPC serve error: %v", err)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

// openDatabase prefers Postgres when DB_URL is set and falls back to an
// embedded SQLite database for local runs.
func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, func(), error) {
	if cfg.Database.DSN != "" {
		entc, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			repo.Close(entc, pool, logger)
			return nil, nil, err
		}
		return entc, func() { repo.Close(entc, pool, logger) }, nil
	}

	entc, err := repo.OpenSQLite(os.Getenv("AUDIT_SQLITE_PATH"), logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, func() { _ = entc.Close() }, nil
}
