package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/godilite/feedback-server/api/v1"
	"github.com/godilite/feedback-server/internal/config"
	handler "github.com/godilite/feedback-server/internal/grpc"
	httpapi "github.com/godilite/feedback-server/internal/http"
	"github.com/godilite/feedback-server/internal/repository"
	"github.com/godilite/feedback-server/internal/service"
	"github.com/godilite/feedback-server/pkg/cache"
	dbbuilder "github.com/godilite/feedback-server/pkg/database"
	grpcsrv "github.com/godilite/feedback-server/pkg/grpc/server"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger       *zap.Logger
	db           *sqlx.DB
	cache        *cache.Cache
	grpcServer   *grpcsrv.Server
	grpcListener net.Listener
	httpServer   *http.Server
	httpListener net.Listener
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *App, err error) {
	a := &App{logger: logger}
	defer func() {
		if err != nil {
			a.closeListeners()
			a.closeResources()
		}
	}()

	if err := prepareDataSource(cfg); err != nil {
		return nil, err
	}

	dbOpts := []dbbuilder.Option{
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
		dbbuilder.WithLogger(logger),
	}
	if strings.Contains(cfg.DBPath, ":memory:") {
		// every connection to an in-memory sqlite database sees its own database
		dbOpts = append(dbOpts, dbbuilder.WithSingleConnection())
	}
	a.db, err = dbbuilder.New(ctx, dbOpts...)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("driver", cfg.DBDriver))

	if cfg.DBMigrate {
		if err := repository.Migrate(a.db.DB, cfg.DBDriver, logger); err != nil {
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
	}

	svcOpts := []service.Option{service.WithRefreshAhead(cfg.CacheRefreshAhead)}
	if cfg.CacheEnabled() {
		a.cache, err = cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
			cache.WithPassword(cfg.RedisPassword),
			cache.WithDB(cfg.RedisDB),
		)
		if err != nil {
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
		svcOpts = append(svcOpts, service.WithCache(a.cache, cfg.CacheTTL))
	} else {
		logger.Info("Cache disabled, REDIS_ADDR not set")
	}

	evaluationService := service.NewEvaluationService(
		service.NewSQLTransactor(a.db, logger),
		logger,
		svcOpts...,
	)

	a.grpcListener, err = net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on grpc port %d: %w", cfg.GRPCPort, err)
	}
	a.grpcServer, err = grpcsrv.New(
		grpcsrv.WithListener(a.grpcListener),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcHandlers := handler.NewGRPCHandlers(evaluationService, logger)
	a.grpcServer.RegisterServiceWithHealth(pb.ServiceName, func(s *grpc.Server) {
		pb.RegisterCohortCourseEvaluationServer(s, grpcHandlers)
	})

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.NewRouter(logger, httpapi.NewEvaluationHandler(logger, evaluationService))

	a.httpListener, err = net.Listen("tcp", fmt.Sprintf(":%d", cfg.HTTPPort))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on http port %d: %w", cfg.HTTPPort, err)
	}
	a.httpServer = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return a, nil
}

// prepareDataSource creates the parent directory of a file-backed sqlite
// database.
func prepareDataSource(cfg *config.Config) error {
	dialect, err := repository.Dialect(cfg.DBDriver)
	if err != nil {
		return err
	}
	if dialect != "sqlite3" || strings.Contains(cfg.DBPath, ":memory:") {
		return nil
	}
	path := strings.TrimPrefix(cfg.DBPath, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	return nil
}

// GRPCAddr returns the gRPC listening address.
func (a *App) GRPCAddr() net.Addr {
	return a.grpcServer.Addr()
}

// HTTPAddr returns the HTTP listening address.
func (a *App) HTTPAddr() net.Addr {
	return a.httpListener.Addr()
}

// Start launches both servers and returns immediately.
func (a *App) Start() {
	a.grpcServer.Start()

	a.logger.Info("HTTP server starting", zap.String("addr", a.httpListener.Addr().String()))
	go func() {
		if err := a.httpServer.Serve(a.httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
}

// Run starts the application and blocks until a shutdown signal is received
// or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("application starting")
	a.Start()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.logger.Info("application shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.Shutdown(shutdownCtx)
	_ = a.logger.Sync()
	return err
}

// Shutdown stops the servers, then releases the cache and database.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := a.grpcServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
	}

	a.closeListeners()
	a.closeResources()

	if len(errs) == 0 {
		a.logger.Info("graceful shutdown completed successfully")
	}
	return errors.Join(errs...)
}

// closeListeners releases the bound ports, including those of an App that
// never started serving.
func (a *App) closeListeners() {
	for _, lis := range []net.Listener{a.grpcListener, a.httpListener} {
		if lis == nil {
			continue
		}
		if err := lis.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			a.logger.Error("listener close error", zap.Error(err))
		}
	}
}

func (a *App) closeResources() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("cache shutdown error", zap.Error(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("database shutdown error", zap.Error(err))
		}
	}
}
