// Package main runs the headless sky frame loop.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/config"
	"github.com/Faultbox/midgard-sky/internal/logger"
	"github.com/Faultbox/midgard-sky/internal/sim"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Midgard Sky Clock ===", zap.String("config", cfg.Source))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	s, err := sim.New(cfg)
	if err != nil {
		logger.Error("failed to create simulation", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx, cfg.Loop.Tick, cfg.Loop.Frames); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("simulation error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Sugar.Infof("sky clock stopped normally after %s frames (%s rejected)",
		humanize.Comma(int64(s.Frames())), humanize.Comma(int64(s.Rejected())))
}
