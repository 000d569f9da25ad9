// airship is the Meridian Kestrel delivery game.
//
// Usage:
//
//	airship [--scenes=<script.yaml>] [--ledger-driver=sqlite|postgres|none] [--no-clear]
//	airship scenes [scene-id]
package main

import (
	"airship-delivery/internal/config"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "airship",
	Short: "Captain the Meridian Kestrel and find the fraudulent package",
	Long: "Record the cargo of six customers on your airship's manifest, then\n" +
		"use the manifest console to find and dump the one fraudulent package.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	// .env must be loaded before flag defaults are read from the environment.
	_ = godotenv.Load()
	cfg = config.Load()

	f := rootCmd.PersistentFlags()
	f.StringVar(&cfg.ScenesPath, "scenes", cfg.ScenesPath, "Path to a replacement scene script (YAML)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
	f.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")

	pf := rootCmd.Flags()
	pf.StringVar(&cfg.LedgerDriver, "ledger-driver", cfg.LedgerDriver, "Captain's log backend: sqlite, postgres or none")
	pf.StringVar(&cfg.LedgerDSN, "ledger-dsn", cfg.LedgerDSN, "Captain's log DSN (postgres URL; sqlite defaults to in-memory)")
	pf.BoolVar(&cfg.NoClear, "no-clear", cfg.NoClear, "Never clear the screen between scenes")

	rootCmd.AddCommand(scenesCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
