package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
	"liyu1981.xyz/battlogger/pkg/battlog"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/config"
	"liyu1981.xyz/battlogger/pkg/db"
	battGrpc "liyu1981.xyz/battlogger/pkg/grpc"
	battHttp "liyu1981.xyz/battlogger/pkg/http"
	"liyu1981.xyz/battlogger/pkg/metrics"
)

type options struct {
	dbPath   string
	memory   bool
	reinit   bool
	initOnly bool
	httpAddr string
	grpcAddr string
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "battlogger",
		Short:         "Battery inventory and capacity test log server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, opts)
			return run(cmd.Context(), cfg, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.dbPath, "db", "", "path of the sqlite database file")
	flags.BoolVar(&opts.memory, "memory", false, "use an in-memory database")
	flags.BoolVar(&opts.reinit, "init", false, "drop all data and re-seed the database")
	flags.BoolVar(&opts.initOnly, "init-only", false, "initialize the database and exit, combine with --init to re-seed")
	flags.StringVar(&opts.httpAddr, "http", "", "HTTP listen address (default "+config.DefaultHTTPHostPort+")")
	flags.StringVar(&opts.grpcAddr, "grpc", "", "gRPC listen address, empty disables gRPC")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("battlogger: %v", err)
	}
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) {
	if cmd.Flags().Changed("db") {
		cfg.DBType = config.DBTypeFile
		cfg.DBPath = opts.dbPath
	}
	if opts.memory {
		cfg.DBType = config.DBTypeMemory
	}
	if cmd.Flags().Changed("http") {
		cfg.HTTPHostPort = opts.httpAddr
	}
	if cmd.Flags().Changed("grpc") {
		cfg.GRPCHostPort = opts.grpcAddr
	}
}

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBType == config.DBTypeMemory {
		return db.UseMemorySqliteDialector()
	}
	return db.UseSqliteDialector(cfg.DBPath)
}

func run(ctx context.Context, cfg *config.Config, opts *options) error {
	logger := common.GetLogger()

	dbInstance, err := db.New(dialector(cfg))
	if err != nil {
		return err
	}
	defer dbInstance.Close()

	m := metrics.New()
	core := battlog.New(dbInstance, m)

	seeded := opts.reinit
	if opts.reinit {
		logger.Info("Reinitializing database")
		if err := core.Reset(ctx, true); err != nil {
			return fmt.Errorf("reset database: %w", err)
		}
	} else if seeded, err = dbInstance.Initialize(ctx, false); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	logger.Info("Database ready", zap.String("type", cfg.DBType), zap.Bool("seeded", seeded))

	if opts.initOnly {
		logger.Info("Initialization complete, exiting")
		return nil
	}
	limiter := fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst)

	errCh := make(chan error, 2)

	if cfg.GRPCHostPort != "" {
		s := battGrpc.NewServer(&battGrpc.BattLogServer{
			Battlog:          core,
			RateLimiterStore: battlog.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		})
		logger.Info("gRPC server created with:", zap.String("default_limiter", limiter))

		listener, err := net.Listen("tcp", cfg.GRPCHostPort)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.GRPCHostPort, err)
		}

		logger.Info("Starting gRPC server on: " + cfg.GRPCHostPort)
		go func() {
			if err := s.Serve(listener); err != nil {
				errCh <- fmt.Errorf("grpc server failed to serve: %w", err)
			}
		}()
		defer s.GracefulStop()
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	rs := &battHttp.RestfulServer{
		Server:  gin.Default(),
		Battlog: core,
		Metrics: m,
	}
	if cfg.HTTPRate > 0 {
		rs.RateLimiterStore = battlog.NewRateLimiterStore(rate.Limit(cfg.HTTPRate), cfg.DefaultBurst)
	}
	rs.Setup()
	logger.Info("http server created", zap.Float64("write_rate", cfg.HTTPRate), zap.Int("write_burst", cfg.DefaultBurst))

	srv := &http.Server{Addr: cfg.HTTPHostPort, Handler: rs.Server}
	logger.Info("Starting HTTP server on: " + cfg.HTTPHostPort)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed to serve: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
