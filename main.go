// reversi-local is a terminal application to play Reversi against a friend
// at the same keyboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reversi-local/config"
	"reversi-local/console"
	"reversi-local/engine/local"
	"reversi-local/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
type options struct {
	configPath string
	width      int
	height     int
	first      string
	hints      bool
	plain      bool
	play       bool
	focus      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "reversi-local",
		Short: "Play Reversi in the terminal",
		Long: `reversi-local is a two-player Reversi game for the terminal.

Both sides play from the same keyboard. The full-screen board is used by
default; --plain switches to a line-based prompt that also works over a pipe.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer closer.Close()
			logger.Info("starting", slog.String("version", Version), slog.Bool("plain", opts.plain))

			if opts.plain {
				return runPlain(cmd.Context(), cfg, logger)
			}
			quickStart := opts.play || opts.focus || gameFlagsChanged(cmd)
			return runTUI(cfg, logger, quickStart, opts.focus)
		},
		SilenceUsage: true,
	}

	bindFlags(rootCmd, opts)
	return rootCmd
}

func bindFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: search the XDG config dirs)")
	flags.IntVar(&opts.width, "width", 0, "Board width (2-26)")
	flags.IntVar(&opts.height, "height", 0, "Board height (2-26)")
	flags.StringVar(&opts.first, "first", "", "Side that moves first (black or white)")
	flags.BoolVar(&opts.hints, "hints", false, "Mark legal moves on the board")
	flags.BoolVar(&opts.plain, "plain", false, "Play with a line-based prompt instead of the full-screen board")
	flags.BoolVar(&opts.play, "play", false, "Start a game immediately with the configured settings")
	flags.BoolVar(&opts.focus, "focus", false, "Start in focus mode (board only)")
}

// loadConfig reads the config and applies any flags the user set on top.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.InitConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Game.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Game.Height = opts.height
	}
	if flags.Changed("first") {
		cfg.Game.FirstPlayer = opts.first
	}
	if flags.Changed("hints") {
		cfg.Game.ShowHints = opts.hints
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func gameFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"width", "height", "first", "hints"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// runPlain plays one game on stdin and stdout. Ctrl-C ends it quietly.
func runPlain(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := local.NewEngine(cfg.EngineConfig(), logger)
	defer eng.Close()

	err := console.Run(ctx, eng, os.Stdin, os.Stdout, cfg.ConsoleGlyphs())
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stdout)
		return nil
	}
	return err
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
