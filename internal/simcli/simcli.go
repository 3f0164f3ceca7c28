// Package simcli is the command line of the host simulator.
package simcli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"epsilon/app"
	"epsilon/hal"
	"epsilon/internal/buildinfo"
)

// AppFactory builds the app body from the resolved configuration.
type AppFactory func(app.Config) func(hal.HAL)

// Execute runs the simulator command line and exits on error.
func Execute(newApp AppFactory) {
	if err := NewRootCmd(newApp).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command. Subcommands pick the frontend.
func NewRootCmd(newApp AppFactory) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:     "eadksim",
		Short:   "Run a calculator app against the simulated firmware",
		Version: buildinfo.Short(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cfgFile)
			if err != nil {
				return err
			}
			return bindFlags(cmd, v)
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./.eadksim.toml)")
	pf.Uint64("seed", 1, "entropy seed")
	pf.String("external-data", "", "file exposed as the read-only external data region")
	pf.Uint8("brightness", 255, "initial backlight level")
	pf.Bool("release", false, "use the silent failure sink")
	pf.Int("rects", 100, "random rectangles painted at startup")

	root.AddCommand(newWindowCmd(newApp), newHeadlessCmd(newApp), newTermCmd(newApp))
	return root
}

func newWindowCmd(newApp AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open a desktop window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			hcfg, err := cfg.hostConfig()
			if err != nil {
				return err
			}
			return hal.RunWindow(hcfg, hal.WindowConfig{Scale: cfg.Scale}, newApp(cfg.appConfig()))
		},
	}
	cmd.Flags().Int("scale", 2, "window scale factor")
	return cmd
}

func newHeadlessCmd(newApp AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run without a window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			hcfg, err := cfg.hostConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err = hal.RunHeadless(ctx, hcfg, hal.HeadlessConfig{
				Hz:         cfg.Hz,
				Ticks:      cfg.Ticks,
				Screenshot: cfg.Screenshot,
				Scale:      cfg.Scale,
			}, newApp(cfg.appConfig()))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	f := cmd.Flags()
	f.Int("hz", 60, "tick rate")
	f.Uint64("ticks", 0, "stop after N ticks (0 = run until the app returns)")
	f.String("screenshot", "", "write the final screen to this PNG file")
	f.Int("scale", 1, "screenshot scale factor")
	return cmd
}

func newTermCmd(newApp AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Render the screen in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			hcfg, err := cfg.hostConfig()
			if err != nil {
				return err
			}
			// Log lines would tear the screen drawn on the same terminal.
			hcfg.Log = io.Discard
			return hal.RunTerminal(hcfg, hal.TerminalConfig{Hz: cfg.Hz}, newApp(cfg.appConfig()))
		},
	}
	cmd.Flags().Int("hz", 30, "redraw rate")
	return cmd
}
