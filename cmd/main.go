package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shogi_insight/internal/adapters"
	"shogi_insight/internal/bootstrap"
	analysisDelivery "shogi_insight/internal/delivery/analysis"
	"shogi_insight/internal/delivery/health"
	"shogi_insight/internal/metrics"
	ownMiddleware "shogi_insight/internal/middleware"
	"shogi_insight/internal/registry"
	repo "shogi_insight/internal/repository"
	analysisuc "shogi_insight/internal/usecase/analysis"
	"shogi_insight/internal/usecase/recognition"
)

type mainDeliveryHandler struct {
	analysis *analysisDelivery.AnalysisHandler
	metrics  http.Handler
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		panic("failed to setup configuration: " + err.Error())
	}

	logger, err := bootstrap.NewLogger(cfg.LogLevel)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	reg, err := registry.FromFile(cfg.PatternsFile)
	if err != nil {
		logger.Fatalw("Failed to load pattern registry", "file", cfg.PatternsFile, "error", err)
	}
	logger.Infow("Pattern registry loaded",
		"formations", len(reg.Formations()),
		"strategies", len(reg.Strategies()))

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	defer databaseAdapters.Close(context.Background())

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(*cfg, logger, reg, databaseAdapters)
	handlers.Router(r, cfg.IsLocalCors)

	healthServer := startHealthServer(ctx, logger, cfg.GrpcPort)

	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("Server shutdown failed", "error", err)
		}
	}()

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if healthServer != nil {
		healthServer.SetServing(true)
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("Failed to start server", "error", err)
	}
	logger.Info("Server stopped")
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h.analysis.Routes(r)
	r.Method(http.MethodGet, "/metrics", h.metrics)
}

// initDatabaseAdapters connects only the stores that are configured; the
// service falls back to in-memory storage for the rest.
func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	var a dataBaseAdapters

	if cfg.MongoUri != "" {
		a.mongoAdapter = adapters.NewAdapterMongo(cfg, log)
		if err := a.mongoAdapter.Init(ctx); err != nil {
			log.Fatalw("Failed to initialize MongoDB", "error", err)
		}
	}

	if cfg.RedisUrl != "" {
		a.redisAdapter = adapters.NewAdapterRedis(cfg, log)
		if err := a.redisAdapter.Init(ctx); err != nil {
			log.Fatalw("Failed to initialize Redis", "error", err)
		}
	}

	log.Infow("Database adapters initialized",
		"mongo", a.mongoAdapter != nil,
		"redis", a.redisAdapter != nil)
	return &a
}

func (a *dataBaseAdapters) Close(ctx context.Context) {
	if a.mongoAdapter != nil {
		_ = a.mongoAdapter.Close(ctx)
	}
	if a.redisAdapter != nil {
		_ = a.redisAdapter.Close(ctx)
	}
}

func initializeDeliveryHandlers(
	cfg bootstrap.Config,
	log *zap.SugaredLogger,
	reg *registry.Registry,
	databaseAdapters *dataBaseAdapters,
) *mainDeliveryHandler {
	var cache analysisuc.RecognitionCache = repo.NewMemoryRecognitionCache(cfg.CacheTTL, cfg.MemoryLimit)
	if databaseAdapters.redisAdapter != nil {
		cache = repo.NewRedisRecognitionCache(databaseAdapters.redisAdapter.GetClient(), cfg.CacheTTL, log)
	}

	var archive analysisuc.AnalysisArchive = repo.NewMemoryAnalysisArchive(cfg.MemoryLimit)
	if databaseAdapters.mongoAdapter != nil {
		archive = repo.NewMongoAnalysisArchive(log, databaseAdapters.mongoAdapter.Database)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recognizer := recognition.NewRecognizer(reg, log, cfg.WorkerLimit)
	analysisUC := analysisuc.NewAnalysisUseCase(recognizer, cache, archive, metrics.New(promRegistry), log)

	return &mainDeliveryHandler{
		analysis: analysisDelivery.NewAnalysisHandler(log, analysisUC),
		metrics:  promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
	}
}

// startHealthServer serves gRPC health checks on port until ctx is done. An
// empty port disables it.
func startHealthServer(ctx context.Context, log *zap.SugaredLogger, port string) *health.Server {
	if port == "" {
		return nil
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalw("Failed to listen for health checks", "port", port, "error", err)
	}

	srv := health.NewServer(log)
	go func() {
		if err := srv.Serve(lis); err != nil {
			log.Errorw("Health server stopped", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		srv.Stop()
	}()
	return srv
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
