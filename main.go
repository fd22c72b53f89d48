// Command pulse-button shows a circular button surrounded by staggered rings
// that expand and fade while it pulses.
//
// Usage:
//
//	pulse-button [--config pulse.toml] [--verbose]
//	pulse-button snapshot --at 750ms --out frame.png
//
// The config file is watched while the window is open; edits are applied
// live. PULSE_BUTTON_CONFIG names the config file when --config is not set.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/pulse-button/internal/config"
	"github.com/iburimskiy/pulse-button/internal/game"
	"github.com/iburimskiy/pulse-button/internal/pulse"
)

const configEnv = "PULSE_BUTTON_CONFIG"

var (
	cfgFile string
	verbose bool
	width   int
	height  int
)

var rootCmd = &cobra.Command{
	Use:   "pulse-button",
	Short: "A circular button with pulsing rings",
	Long: `pulse-button opens a window with a single pulse button.

Click the button or press Space to toggle between pulsing and the
selected image. Arrow keys change the ring count, [ and ] the interval
between rings, N and S pick new images.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (TOML, can also use "+configEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "window or image width (overrides config)")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "window or image height (overrides config)")

	rootCmd.AddCommand(snapshotCmd)
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	pulse.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// configPath returns the config file to use, flag first.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return os.Getenv(configEnv)
}

// loadConfig reads the config and applies the size flags.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := configPath(); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return nil, err
		}
		pulse.Logger().Debug("using config file", "path", path)
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var updates <-chan config.Result
	if path := configPath(); path != "" {
		if updates, err = config.Watch(ctx, path, config.DefaultDebounce); err != nil {
			// The window still works without live reload.
			pulse.Logger().Warn("config watch disabled", "path", path, "err", err)
		}
	}

	return game.Run(ctx, cfg, updates)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
