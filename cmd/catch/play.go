package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/square-catch/internal/config"
	"github.com/vovakirdan/square-catch/internal/core"
	"github.com/vovakirdan/square-catch/internal/game"
	"github.com/vovakirdan/square-catch/internal/platform/tui"
	"github.com/vovakirdan/square-catch/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session.

Controls:
  Enter          - Start the round with the typed nickname
  Arrows/WASD    - Move
  R/Enter        - Restart (after the round)
  E              - End the game (after the round)
  Q/Esc/Ctrl+C   - Quit
  Ctrl+S         - Save a screenshot

Examples:
  catch play
  catch play --seed 42
  catch play --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	catchCfg, err := config.LoadCatch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newLogger(flagLogPath, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, logFile = log.New(io.Discard), io.NopCloser(nil)
	}
	defer logFile.Close()

	// A broken leaderboard is fatal.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open leaderboard: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Console output is held until the alternate screen is gone.
	var console bytes.Buffer
	session := game.NewSession(catchCfg, store, cfg.Seed,
		game.WithLogger(logger),
		game.WithConsole(&console),
	)

	logger.Info("session starting", "seed", cfg.Seed, "db", flagDBPath, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	runErr := tui.Run(session, cfg, tui.Options{
		HoldWindow: catchCfg.Input.HoldWindow,
		Logger:     logger,
	})

	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("could not close leaderboard", "error", closeErr)
	}

	if _, err := console.WriteTo(os.Stdout); err != nil {
		logger.Warn("could not flush console", "error", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
