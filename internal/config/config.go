package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage backend names accepted by WRITEWELL_STORAGE.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataDir        string // root directory for file storage and defaults
	StorageBackend string // "file" | "memory" | "redis" | "sqlite" | "postgres"

	SQLitePath  string // sqlite database path (sqlite backend only)
	PostgresDSN string // connection string (postgres backend only)

	// Redis (redis backend only)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt

	AutosaveDebounce time.Duration // quiet period before content edits commit

	BackupFile     string        // path for yaml snapshots (empty = backups disabled)
	BackupInterval time.Duration // interval between scheduled snapshots

	AllowedCIDRS []string // optional, restrict access to specific IPs/CIDRs (empty = no filtering)
}

func Load() *Config {
	dataDir := getenv("WRITEWELL_DATA_DIR", "data")

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("WRITEWELL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("WRITEWELL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("WRITEWELL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("WRITEWELL_PRETTY_LOG", true),

		// Storage
		DataDir:        dataDir,
		StorageBackend: getenv("WRITEWELL_STORAGE", BackendFile),
		SQLitePath:     getenv("WRITEWELL_SQLITE_PATH", filepath.Join(dataDir, "writewell.db")),
		PostgresDSN:    getenv("WRITEWELL_POSTGRES_DSN", ""),

		// Redis settings
		RedisAddr:           getenv("WRITEWELL_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("WRITEWELL_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("WRITEWELL_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("WRITEWELL_REDIS_DB", 0),
		RedisDT:             mustDuration("WRITEWELL_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("WRITEWELL_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("WRITEWELL_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("WRITEWELL_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("WRITEWELL_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("WRITEWELL_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("WRITEWELL_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("WRITEWELL_REDIS_PING_TIMEOUT", 5*time.Second),

		// Autosave
		AutosaveDebounce: mustDuration("WRITEWELL_AUTOSAVE_DEBOUNCE", 300*time.Millisecond),

		// Backups
		BackupFile:     getenv("WRITEWELL_BACKUP_FILE", ""), // Optional, empty = backups disabled
		BackupInterval: mustDuration("WRITEWELL_BACKUP_INTERVAL", 24*time.Hour),

		// Access restrictions
		AllowedCIDRS: splitAndTrim(getenv("WRITEWELL_ALLOWED_CIDRS", "")),
	}

	switch cfg.StorageBackend {
	case BackendFile, BackendMemory, BackendRedis, BackendSQLite, BackendPostgres:
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown WRITEWELL_STORAGE backend: %q", cfg.StorageBackend))
	}

	if cfg.StorageBackend == BackendPostgres && cfg.PostgresDSN == "" {
		panic("❌ FATAL: WRITEWELL_POSTGRES_DSN is required when WRITEWELL_STORAGE=postgres")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		if cfg.PostgresDSN != "" {
			cfgCopy.PostgresDSN = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
