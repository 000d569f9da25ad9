package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Ledger backends selectable via LEDGER_DRIVER.
const (
	LedgerSqlite   = "sqlite"
	LedgerPostgres = "postgres"
	LedgerNone     = "none"
)

// Runtime settings for one game session, resolved from the environment.
// Command-line flags are applied on top by the caller.
type Config struct {
	ScenesPath   string
	LogLevel     string
	LogFormat    string
	LogFile      string
	LedgerDriver string
	LedgerDSN    string
	NoClear      bool
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetBool parses a boolean environment value, falling back on unset or unparsable input.
func GetBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func Load() Config {
	return Config{
		ScenesPath:   Get("SCENES_PATH", ""),
		LogLevel:     Get("LOG_LEVEL", "warn"),
		LogFormat:    Get("LOG_FORMAT", "console"),
		LogFile:      Get("LOG_FILE", ""),
		LedgerDriver: Get("LEDGER_DRIVER", LedgerSqlite),
		LedgerDSN:    Get("LEDGER_DSN", ""),
		NoClear:      GetBool("NO_CLEAR", false),
	}
}

// Validate rejects settings no adapter can be built from.
func (c Config) Validate() error {
	switch c.LedgerDriver {
	case LedgerSqlite, LedgerNone:
	case LedgerPostgres:
		if strings.TrimSpace(c.LedgerDSN) == "" {
			return fmt.Errorf("config: LEDGER_DSN is required when LEDGER_DRIVER=%s", LedgerPostgres)
		}
	default:
		return fmt.Errorf("config: unknown LEDGER_DRIVER %q (want sqlite, postgres or none)", c.LedgerDriver)
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q (want console or json)", c.LogFormat)
	}

	return nil
}
