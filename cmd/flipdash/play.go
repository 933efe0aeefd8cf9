package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
	"github.com/vovakirdan/flipdash/internal/game"
	"github.com/vovakirdan/flipdash/internal/input/serial"
	"github.com/vovakirdan/flipdash/internal/logging"
	"github.com/vovakirdan/flipdash/internal/platform/tui"
	"github.com/vovakirdan/flipdash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSerial     string
	flagBaud       int
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start Flip Dash.

Controls:
  Space/Up/W  - Jump (flip gravity during the flip phase)
  Enter       - Play from the menu
  R           - Restart after game over
  Tab         - Open/close the shop
  B           - Buy the shop skin
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Longer gaps between spikes
  normal - Default spawn window
  hard   - Shorter gaps between spikes

Examples:
  flipdash play
  flipdash play --difficulty easy
  flipdash play --config ./my-flipdash.yaml --watch
  flipdash play --serial /dev/ttyACM0 --baud 115200`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagSerial, "serial", "", "Serial port of a hardware controller")
	playCmd.Flags().IntVar(&flagBaud, "baud", serial.DefaultBaud, "Serial baud rate")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	logger, logCloser, err := logging.New(logging.DefaultPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "path", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	opts := tui.Options{
		Game:       game.New(cfg, game.NewRand(seed), logger),
		Store:      store,
		Logger:     logger,
		Difficulty: preset,
	}

	if flagSerial != "" {
		reader := serial.NewReader(flagSerial, flagBaud, logger)
		opts.Signals = reader
		g.Go(func() error { return reader.Run(gctx) })
	}

	if flagWatch {
		if watcher := startWatcher(flagConfig, logger); watcher != nil {
			opts.ConfigUpdates = watcher.Updates()
			g.Go(func() error { return watcher.Run(gctx) })
		}
	}

	logger.Info("starting", "seed", seed, "preset", preset, "serial", flagSerial)
	runErr := tui.Run(opts, runtime)

	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("background task failed", "error", err)
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// startWatcher follows the config file Load picked. The embedded default
// has no file to watch.
func startWatcher(customPath string, logger *log.Logger) *config.Watcher {
	path := config.Resolve(customPath)
	if path == "" {
		logger.Warn("--watch ignored: using embedded default config")
		return nil
	}
	w, err := config.NewWatcher(path, logger)
	if err != nil {
		logger.Warn("config watch disabled", "path", path, "error", err)
		return nil
	}
	return w
}
