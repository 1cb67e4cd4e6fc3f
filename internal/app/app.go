package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/writewell/writewell/internal/backup"
	"github.com/writewell/writewell/internal/config"
	"github.com/writewell/writewell/internal/httpserver"
	"github.com/writewell/writewell/internal/httpserver/deps"
	"github.com/writewell/writewell/internal/kv"
	"github.com/writewell/writewell/internal/logger"
	"github.com/writewell/writewell/internal/persist"
	"github.com/writewell/writewell/internal/redis"
	"github.com/writewell/writewell/internal/store"
	"github.com/writewell/writewell/internal/version"
)

type App struct {
	cfg       *config.Config
	logger    logger.Logger
	server    *httpserver.Server
	kvStore   kv.Store
	store     *store.Store
	autosaver *store.Autosaver
	exporter  *backup.Exporter
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open the key-value backend early - fail fast if unavailable
	kvStore, err := openBackend(cfg, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open %s backend: %v", cfg.StorageBackend, err)
		os.Exit(1)
	}
	loggerClient.Info("storage backend ready", logger.String("backend", cfg.StorageBackend))

	adapter := persist.NewAdapter(kvStore, loggerClient)

	// Hydrate the in-memory store from storage. Corrupt or missing data
	// yields empty collections, so startup never fails here.
	st := store.New(adapter, loggerClient)
	st.Hydrate(context.Background())

	autosaver := store.NewAutosaver(st, loggerClient, cfg.AutosaveDebounce)

	// Initialize the backup exporter (if a backup file is configured)
	var exporter *backup.Exporter
	var backupTrigger chan struct{}
	if cfg.BackupFile != "" {
		loggerClient.Info("backup file configured, initializing exporter",
			logger.String("file", cfg.BackupFile))
		backupTrigger = make(chan struct{}, 1)
		exporter = backup.NewExporter(st, loggerClient, cfg.BackupFile, cfg.BackupInterval, backupTrigger)
	} else {
		loggerClient.Info("backup file not configured, snapshots disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		Store:         st,
		Autosaver:     autosaver,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		BackupFile:    cfg.BackupFile,
		BackupTrigger: backupTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:       cfg,
		logger:    loggerClient,
		server:    server,
		kvStore:   kvStore,
		store:     st,
		autosaver: autosaver,
		exporter:  exporter,
	}
}

// openBackend builds the kv.Store named by the config.
func openBackend(cfg *config.Config, log logger.Logger) (kv.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return kv.NewMemory(), nil
	case config.BackendFile:
		return kv.NewFile(filepath.Join(cfg.DataDir, "kv"))
	case config.BackendSQLite:
		return kv.NewSQLite(cfg.SQLitePath)
	case config.BackendPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return kv.NewPostgres(ctx, cfg.PostgresDSN)
	case config.BackendRedis:
		log.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.Connect(redis.Options{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, log)
		if err != nil {
			return nil, err
		}
		return kv.NewRedis(client), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.StorageBackend)
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Writewell v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Writewell %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the backup exporter (if enabled)
	if a.exporter != nil {
		if err := a.exporter.Start(ctx); err != nil {
			return fmt.Errorf("failed to start backup exporter: %w", err)
		}
		a.logger.Info("backup exporter started",
			logger.Duration("interval", a.cfg.BackupInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop exporter
	if a.exporter != nil {
		a.exporter.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Commit any pending edit before the store goes away
	if err := a.autosaver.Close(); err != nil {
		a.logger.Warnf("failed to close autosaver: %v", err)
	}

	if a.kvStore != nil {
		if err := a.kvStore.Close(); err != nil {
			a.logger.Warnf("failed to close storage: %v", err)
		} else {
			a.logger.Info("✅ Storage closed cleanly")
		}
	}

	a.logger.Info("✅ Writewell stopped cleanly")
	return nil
}
