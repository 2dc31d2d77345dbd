package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	termui "github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// Front ends selectable with --backend.
const (
	backendTUI   = "tui"
	backendTcell = "tcell"
)

var (
	flagBackend string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Steer (hjkl with the tui backend only)
  ?                 - Toggle full help (tui backend)
  Ctrl+S            - Save a text screenshot (tui backend)
  Q/Esc/Ctrl+C      - Quit

Backends:
  tui    - Bubble Tea program with a help footer (default)
  tcell  - Direct tcell screen with incremental redraw

Examples:
  snake play
  snake play --backend tcell
  snake play --sound --log-file snake.log --log-level debug
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", backendTUI, "Front end: tui or tcell")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play a chime when an apple is eaten")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagBackend != backendTUI && flagBackend != backendTcell {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (want %s or %s)\n", flagBackend, backendTUI, backendTcell)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = cfg.WithSpeed(flagFPS)

	out, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logger, err := newLogger(out, "snake", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := resolveSeed(flagSeed)
	game, err := snake.New(cfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting game",
		"backend", flagBackend,
		"grid", fmt.Sprintf("%dx%d", game.Board().Width(), game.Board().Height()),
		"speed", cfg.Speed,
		"seed", seed,
	)

	var chime *audio.Chime
	if flagSound {
		chime = audio.NewChime()
		if err := chime.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", "error", err)
			chime = nil
		} else {
			defer chime.Close()
		}
	}

	var runErr error
	switch flagBackend {
	case backendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := termui.Options{Logger: logger}
		if chime != nil {
			opts.Sounds = chime
		}
		runErr = termui.Run(ctx, game, opts)

	default:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		opts := tui.Options{Logger: logger}
		if chime != nil {
			opts.Sounds = chime
		}
		runErr = tui.Run(game, width, height, opts)
	}

	snap := game.Snapshot()
	logger.Info("game ended", "ticks", snap.Tick, "apples", snap.ApplesEaten, "best", snap.Best)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
