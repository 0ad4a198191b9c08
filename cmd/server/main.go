package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/faang-dcc/validator-api/internal/config"
	"github.com/faang-dcc/validator-api/internal/http/health"
	"github.com/faang-dcc/validator-api/internal/http/root"
	"github.com/faang-dcc/validator-api/internal/http/v1/routes"
	appfirestore "github.com/faang-dcc/validator-api/internal/platform/firestore"
	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
	appmiddleware "github.com/faang-dcc/validator-api/internal/platform/middleware"
	"github.com/faang-dcc/validator-api/internal/platform/respond"
	"github.com/faang-dcc/validator-api/internal/service/biosamples"
	"github.com/faang-dcc/validator-api/internal/service/ontology"
	"github.com/faang-dcc/validator-api/internal/service/tasks"
	"github.com/faang-dcc/validator-api/internal/validation"
	"github.com/faang-dcc/validator-api/internal/ws"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	// Task persistence: Firestore when a project is configured,
	// otherwise an in-memory store for local development.
	var taskService tasks.Service
	if cfg.FirestoreProjectID != "" {
		fsClient, err := appfirestore.NewClient(ctx, appfirestore.Config{
			ProjectID:       cfg.FirestoreProjectID,
			CredentialsFile: cfg.CredentialsFile,
		})
		if err != nil {
			applog.LogFatal(ctx, "firestore init failed", err,
				zap.String("project_id", cfg.FirestoreProjectID))
		}
		defer func() { _ = fsClient.Close() }()
		taskService = tasks.NewFirestoreStore(fsClient)
	} else {
		applog.LogWarn(ctx, "no Firestore project configured, tasks are kept in memory")
		taskService = tasks.NewMockTaskService()
	}

	// Ontology term cache: Redis when configured, in-process otherwise.
	var termCache ontology.Cache = ontology.NewMemoryCache()
	if cfg.RedisAddr != "" {
		db, _ := strconv.Atoi(cfg.RedisDB)
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       db,
		})
		defer func() { _ = redisClient.Close() }()
		termCache = ontology.NewRedisCache(redisClient)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	ontologyService := ontology.NewClient(httpClient,
		ontology.WithBaseURL(cfg.OLSBaseURL),
		ontology.WithCache(termCache),
	)
	biosamplesService := biosamples.NewClient(httpClient,
		biosamples.WithBaseURL(cfg.BioSamplesBaseURL),
	)

	engine := validation.NewEngine(ontologyService, biosamplesService)
	hub := ws.NewHub()
	runner := tasks.NewRunner(taskService, engine, hub)

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(5<<20), // 5 MB limit, batches can be large
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	respond.Install()

	humaCfg := huma.DefaultConfig("FAANG Validator API", Version)
	humaCfg.DocsPath = "/api-docs"
	// Response bodies are exact wire contracts; no $schema injection.
	humaCfg.CreateHooks = nil
	api := humachi.New(router, humaCfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	// Register routes
	root.Register(api)
	routes.Register(api, engine, taskService, runner)
	router.Get("/health", health.Handler)
	router.Get("/ws", ws.Handler(hub))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		// Synchronous validation waits on OLS and BioSamples lookups.
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	hub.Close()
	runner.Wait()
	applog.LogInfo(context.Background(), "server exited")
}
