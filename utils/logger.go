package utils

import (
	"log"
	"sync"

	"barberia/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "barberia"

var (
	// Logger is the process-wide logger. Use GetLogger to read it.
	Logger     *zap.Logger
	loggerOnce sync.Once
)

// newLoggerConfig picks JSON/info for production and colored/debug elsewhere.
// LOG_LEVEL overrides either default.
func newLoggerConfig(production bool, level string) zap.Config {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		if lvl, err := zap.ParseAtomicLevel(level); err == nil {
			cfg.Level = lvl
		} else {
			log.Printf("Ignoring invalid LOG_LEVEL %q: %v", level, err)
		}
	}
	return cfg
}

// InitializeLogger builds the global logger from the loaded configuration.
func InitializeLogger() {
	cfg := newLoggerConfig(config.IsProduction(), config.AppConfig.LogLevel)
	built, err := cfg.Build(zap.Fields(zap.String("service", serviceName)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = built
}

// GetLogger retrieves the global logger, building it on first use.
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		if Logger == nil {
			InitializeLogger()
		}
	})
	return Logger
}

// SyncLogger flushes buffered entries. Errors from syncing stderr are ignored.
func SyncLogger() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
