// v0
// internal/config/config.go
package config

import (
	"os"
	"time"
)

type Config struct {
	BindAddr         string        // e.g. ":8080"
	LogFilePath      string        // dual-logger file target, empty disables the file sink
	HTTPReadTimeout  time.Duration // bounds reading incoming requests
	HTTPWriteTimeout time.Duration // bounds writing responses
	ShutdownTimeout  time.Duration // limits graceful shutdown attempts
	MaxUploadBytes   int64         // cap on batch CSV upload size
}

const (
	defaultBindAddr     = ":8080"
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultShutdown     = 10 * time.Second
	defaultMaxUpload    = int64(8 << 20) // 8 MiB
)

// FromEnv resolves configuration from environment variables, falling back to
// defaults so the service can boot with no setup.
func FromEnv() Config {
	cfg := Config{
		BindAddr:         defaultBindAddr,
		LogFilePath:      os.Getenv("HEATRISK_LOGFILE"),
		HTTPReadTimeout:  defaultReadTimeout,
		HTTPWriteTimeout: defaultWriteTimeout,
		ShutdownTimeout:  defaultShutdown,
		MaxUploadBytes:   defaultMaxUpload,
	}
	if v := os.Getenv("HEATRISK_BIND_ADDR"); v != "" {
		cfg.BindAddr = v
	}
	if d, ok := envDuration("HEATRISK_HTTP_READ_TIMEOUT"); ok {
		cfg.HTTPReadTimeout = d
	}
	if d, ok := envDuration("HEATRISK_HTTP_WRITE_TIMEOUT"); ok {
		cfg.HTTPWriteTimeout = d
	}
	if d, ok := envDuration("HEATRISK_SHUTDOWN_TIMEOUT"); ok {
		cfg.ShutdownTimeout = d
	}
	return cfg
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
