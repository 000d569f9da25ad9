package main

import (
	"airship-delivery/internal/adapters/ledger"
	"airship-delivery/internal/adapters/scenes"
	"airship-delivery/internal/config"
	"airship-delivery/internal/console"
	"airship-delivery/internal/manifest"
	"airship-delivery/internal/platform/logging"
	"airship-delivery/internal/ports"
	"airship-delivery/internal/services"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runPlay(cmd *cobra.Command, _ []string) (err error) {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	provider, err := loadScenes(cfg.ScenesPath)
	if err != nil {
		return err
	}

	journal, err := ledger.Open(ctx, cfg.LedgerDriver, cfg.LedgerDSN)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := journal.Close(ctx); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close ledger: %w", cerr))
		}
	}()

	out := cmd.OutOrStdout()
	prompter := console.NewPrompter(cmd.InOrStdin(), out, !cfg.NoClear && isTerminal(out))
	session := services.NewSession(manifest.New(), provider, journal, prompter)

	outcome, err := session.Run(ctx)
	if err != nil {
		return err
	}

	logging.New("cli").Info("game over", zap.Stringer("outcome", outcome))
	if outcome == services.OutcomeAborted {
		fmt.Fprintln(out, "\n  The Captain leaves the bridge. Fair winds.")
	}
	return nil
}

func loadScenes(path string) (ports.SceneProvider, error) {
	if path == "" {
		return scenes.LoadEmbedded()
	}
	return scenes.LoadFile(path)
}

func setupLogging(c config.Config) (func(), error) {
	var w io.Writer = os.Stderr
	closeFile := func() {}

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %q: %w", c.LogFile, err)
		}
		w = f
		closeFile = func() { _ = f.Close() }
	}

	if err := logging.Init(c.LogLevel, c.LogFormat, w); err != nil {
		closeFile()
		return nil, err
	}

	return func() {
		logging.Sync()
		closeFile()
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
