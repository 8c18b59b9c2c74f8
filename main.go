// satchel runs the inventory sandbox in the local terminal. Configuration
// comes from SATCHEL_* environment variables; logs go to SATCHEL_LOG_FILE
// when set and are discarded otherwise, since the screen owns stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"satchel/internal/config"
	"satchel/internal/game"
	"satchel/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gameCfg, err := cfg.Game()
	if err != nil {
		return err
	}

	var w io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		w = f
	}
	level, _ := telemetry.ParseLevel(cfg.LogLevel)

	g, err := game.New(gameCfg, telemetry.NewLogger(level, w))
	if err != nil {
		return err
	}
	g.Run()
	return nil
}
