// Package config loads application configuration from environment variables
// into plain Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file (when present) is loaded into the process
// environment exactly once, then struct fields annotated with `env` tags are
// populated from it.
//
// # Usage
//
//	type Config struct {
//	    Path     string `env:"PROCDEV_PATH" envDefault:"/proc/devices"`
//	    LogLevel string `env:"PROCDEV_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle ErrParsingConfig / ErrNilPointer
//	}
//
// LoadEnv loads additional `.env` files explicitly, which is handy in tests:
//
//	if err := config.LoadEnv("testdata/.env.local"); err != nil { ... }
//
// # Error Handling
//
// Sentinel errors compare with errors.Is: ErrParsingConfig when the
// environment cannot be parsed into the struct, ErrLoadingEnvFile when an
// explicitly named .env file cannot be read, and ErrNilPointer for a nil
// destination.
package config
