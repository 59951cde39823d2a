package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"swingbot/internal/config"
	"swingbot/internal/gateway"
	"swingbot/internal/logger"
	"swingbot/internal/store/gormstore"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentFetches = 4

func main() {
	ctx := context.Background()
	cfgPath := os.Getenv("SWINGBOT_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("loading config failed: %v", err)
	}
	logFile, err := setupLogOutput(cfg.App.LogPath)
	if err != nil {
		log.Fatalf("initializing log file failed: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(cfg.App.LogLevel)
	logger.Infof("config loaded (env=%s mode=%s data_source=%s)", cfg.App.Env, cfg.Market.Mode, cfg.Market.DataSource)

	st, err := gormstore.New(cfg.Store.Path)
	if err != nil {
		log.Fatalf("opening store failed: %v", err)
	}
	defer st.Close()

	runID := uuid.NewString()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for _, symbol := range cfg.Market.Symbols {
		symbol := symbol
		g.Go(func() error {
			// Providers are single-call-at-a-time, so each symbol gets its
			// own instance. Construction is pure and cheap.
			provider, err := gateway.NewProviderFromConfig(cfg)
			if err != nil {
				return err
			}
			defer provider.Close()

			bars, err := provider.FetchBars(gctx, symbol, cfg.Market.DaysHistory)
			if err != nil {
				logger.Errorf("[%s] fetching %s failed: %v", runID, symbol, err)
				return err
			}
			if len(bars) == 0 {
				logger.Warnf("[%s] no bars for %s over the last %d days", runID, symbol, cfg.Market.DaysHistory)
				return nil
			}
			if err := st.SavePrices(gctx, symbol, bars); err != nil {
				return err
			}
			logger.Infof("[%s] %s: stored %d bars via %s", runID, symbol, len(bars), provider.Name())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}

func setupLogOutput(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	dir := filepath.Dir(trimmed)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	mw := io.MultiWriter(os.Stdout, file)
	log.SetOutput(mw)
	logger.SetOutput(mw)
	return file, nil
}
