package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	options Options
	debug   bool
}{}

var rootCmd = &cobra.Command{
	Use:          "replaycontrols",
	Short:        "Volume control demo: mute toggle and volume slider over a test tone",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&rootFlags.options.Captions, "captions", "default", "caption set in captions/ (basename, .yaml optional)")
	rootCmd.Flags().Float64Var(&rootFlags.options.Volume, "volume", 0.7, "initial volume between 0 and 1")
	rootCmd.Flags().BoolVar(&rootFlags.options.Muted, "muted", false, "start muted")
	rootCmd.Flags().Float64Var(&rootFlags.options.ToneHz, "tone", 440, "test tone frequency in Hz, 0 disables audio")
	rootCmd.Flags().BoolVar(&rootFlags.options.Watch, "watch", false, "reload captions when files in captions/ change")
	rootCmd.Flags().BoolVar(&rootFlags.debug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	if rootFlags.debug {
		initLogger(slog.LevelDebug)
	} else {
		initLogger(slog.LevelInfo)
	}

	game, err := NewGame(rootFlags.options)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth*2, baseHeight*2)
	ebiten.SetWindowTitle("replaycontrols")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func initLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}
