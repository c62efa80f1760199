// Command follow runs a headless scene where a cube rides a cubic Bezier
// curve and a text label stays anchored to the cube's bottom-right corner
// on screen. Every frame's overlay layout is logged.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"GopherAnchor/internal/config"
	"GopherAnchor/internal/engine"
	"GopherAnchor/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "follow:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "scene.yaml", "scene configuration file (.yaml, .yml or .json)")
	frames := flag.Int("frames", -1, "stop after this many frames (0 runs until interrupted)")
	logLevel := flag.String("log-level", "", "override the configured log level")
	every := flag.Int("report-every", 30, "log the overlay layout every N frames")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger.InitWithLevel(cfg.LogLevel)
	defer logger.Sync()
	logger.Log.Info("Follow example initializing...", zap.String("config", *configPath))

	gopher := newEngine(cfg)
	if _, err := setupScene(gopher, cfg); err != nil {
		return err
	}
	if err := gopher.Setup(); err != nil {
		return err
	}
	gopher.SetOnFrameCallback(frameReporter(*every))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	loopDone := make(chan struct{})
	group.Go(func() error {
		defer close(loopDone)
		return gopher.Run(ctx)
	})
	group.Go(func() error {
		stopCh := make(chan os.Signal, 1)
		signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(stopCh)

		select {
		case sig := <-stopCh:
			logger.Log.Info("Shutting down", zap.String("signal", sig.String()))
			cancel()
		case <-loopDone:
		case <-ctx.Done():
		}
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func engineRefresh(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// frameReporter logs the overlay of every n-th frame plus every frame in
// which an anchor update was skipped.
func frameReporter(n int) func(engine.Frame) {
	if n <= 0 {
		n = 1
	}
	return func(frame engine.Frame) {
		skips := make(map[int]error)
		for _, p := range frame.Placements {
			if p.Err != nil {
				skips[p.ElementID] = p.Err
			}
		}
		if frame.Index%n != 0 && len(skips) == 0 {
			return
		}

		for _, label := range frame.Labels {
			fields := []zap.Field{
				zap.Int("frame", frame.Index),
				zap.Int("element", label.ID),
				zap.Float32("x", label.Position.X()),
				zap.Float32("y", label.Position.Y()),
				zap.Float32("width", label.Size.X()),
				zap.Float32("height", label.Size.Y()),
				zap.Bool("visible", label.Visible),
				zap.Int("gizmo_segments", len(frame.Gizmos)),
			}
			if err, ok := skips[label.ID]; ok {
				fields = append(fields, zap.NamedError("skip", err))
			}
			logger.Log.Info("Overlay", fields...)
		}
	}
}
