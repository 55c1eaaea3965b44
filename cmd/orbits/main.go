package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/solar-orbits/audio"
	"github.com/lixenwraith/solar-orbits/config"
	"github.com/lixenwraith/solar-orbits/engine"
	"github.com/lixenwraith/solar-orbits/metrics"
	"github.com/lixenwraith/solar-orbits/physics"
	"github.com/lixenwraith/solar-orbits/terminal"
	"github.com/spf13/cobra"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "orbits",
		Short:         "Animated 2D orbits of the eight planets in the terminal",
		Long:          "Animated 2D orbits of the eight planets. Drag the slider or use the arrow keys to scale time, r for real time, 1-8 to focus a planet, b to go back, q to quit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.New(cmd.Flags())
			if err != nil {
				return report(err)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return report(err)
			}
			return report(run(cmd.Context(), cfg))
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func report(err error) error {
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbits: %v\n", err)
	}
	return err
}

func run(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}
	log.Printf("config: fps=%d color=%s sound=%t metrics=%q speed=%v",
		cfg.FPS, cfg.ColorMode, cfg.Sound, cfg.MetricsAddr, cfg.InitialSpeed)

	screen, err := terminal.New(cfg.ColorMode)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Driver.Shutdown releases the screen on quit; this covers early returns
	defer screen.Fini()

	var player audio.Player = audio.Silent{}
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			player = sm
			defer sm.Cleanup()
		}
	}

	var recorder *metrics.Recorder
	if cfg.MetricsAddr != "" {
		recorder = metrics.NewRecorder()
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, recorder); err != nil {
				log.Printf("metrics: %v", err)
			}
		}()
	}

	driver, err := engine.New(screen, physics.DefaultPlanets(), engine.Options{
		FrameInterval: cfg.FrameInterval(),
		InitialSpeed:  cfg.InitialSpeed,
		Epoch:         time.Now().UTC(),
		Sound:         player,
		Metrics:       recorder,
		CrashHandler:  crash,
	})
	if err != nil {
		return fmt.Errorf("build simulation: %w", err)
	}

	err = driver.Run(ctx)
	log.Printf("stopped after %d frames", driver.Frames())
	return err
}

// crash restores the terminal and prints the panic with its stack, then exits
func crash(r any) {
	terminal.EmergencyReset(os.Stdout)
	// \r\n for raw mode compatibility
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mORBITS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
