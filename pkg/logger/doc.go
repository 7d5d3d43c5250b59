// Package logger builds configured log/slog loggers through functional
// options.
//
// It exposes two output formats: JSON for log aggregation systems and text
// for humans. Defaults are production-safe (JSON, info level, stdout).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithAttr(slog.String("service", "procdev")),
//	)
//	log.Info("device listing parsed", slog.Int("entries", n))
//
// ParseLevel converts a level name from configuration ("debug", "info",
// "warn", "error") into a slog.Level, falling back to info for anything it
// does not recognize.
package logger
