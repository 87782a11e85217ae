package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/encounter-budget/internal/clients/external"
	"github.com/KirkDiggler/encounter-budget/internal/config"
	"github.com/KirkDiggler/encounter-budget/internal/engine"
	"github.com/KirkDiggler/encounter-budget/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/encounter-budget/internal/handlers/encounter/v1alpha1"
	"github.com/KirkDiggler/encounter-budget/internal/handlers/gateway"
	"github.com/KirkDiggler/encounter-budget/internal/orchestrators/encounter"
	"github.com/KirkDiggler/encounter-budget/internal/pkg/clock"
	"github.com/KirkDiggler/encounter-budget/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/encounter-budget/internal/redis"
	encounterplan "github.com/KirkDiggler/encounter-budget/internal/repositories/encounter_plan"
)

const shutdownTimeout = 30 * time.Second

var (
	configPath string
	grpcPort   int
	httpPort   int
	redisAddr  string
	catalog    bool
	debug      bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server and HTTP gateway",
	Long:  `Start the encounter budget gRPC server and its HTTP/JSON gateway.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 8080, "HTTP gateway port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address; plans are kept in memory when empty")
	serverCmd.Flags().BoolVar(&catalog, "catalog", false, "Enable the D&D 5e API monster catalog")
	serverCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.GRPCPort = grpcPort
	}
	if flags.Changed("http-port") {
		cfg.Server.HTTPPort = httpPort
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Addr = redisAddr
	}
	if flags.Changed("catalog") {
		cfg.External.Enabled = catalog
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newPlanRepository(ctx context.Context, cfg *config.RedisConfig) (encounterplan.Repository, func(), error) {
	if cfg.Addr == "" {
		log.Println("No redis address configured, keeping plans in memory")
		return encounterplan.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := redisclient.Connect(ctx, cfg.Addr, cfg.Options())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	repo, err := encounterplan.NewRedis(&encounterplan.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create plan repository: %w", err)
	}

	log.Printf("Storing plans in redis at %s", cfg.Addr)
	return repo, cleanup, nil
}

func newEncounterService(cfg *config.Config, repo encounterplan.Repository) (encounter.Service, error) {
	eng, err := engine.New(&engine.Config{
		Chart:      cfg.Chart.GridConfig(),
		DiceRoller: rpgtoolkit.NewRoller(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	var catalogClient external.Client
	if cfg.External.Enabled {
		catalogClient, err = external.New(cfg.External.ClientConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create monster catalog client: %w", err)
		}
		log.Printf("Monster catalog enabled at %s", cfg.External.BaseURL)
	}

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		PlanRepo:       repo,
		Engine:         eng,
		IDGenerator:    idgen.NewUUID("plan"),
		ExternalClient: catalogClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create encounter orchestrator: %w", err)
	}
	return svc, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	if debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	repo, closeRepo, err := newPlanRepository(ctx, &cfg.Redis)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := newEncounterService(cfg, repo)
	if err != nil {
		return err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService: svc,
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter handler: %w", err)
	}

	gw, err := gateway.New(&gateway.Config{Service: handler})
	if err != nil {
		return fmt.Errorf("failed to create gateway: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterEncounterBudgetServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           gw,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		log.Printf("gRPC server starting on port %d...", cfg.Server.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		log.Printf("HTTP gateway starting on port %d...", cfg.Server.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		healthServer.Shutdown()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP gateway shutdown: %v", err)
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		srv.Stop()
		_ = httpServer.Close() // nolint:errcheck // already failing
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
