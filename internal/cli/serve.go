package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/khankhulgun/maritimemap"
	"github.com/khankhulgun/maritimemap/config"
	"github.com/khankhulgun/maritimemap/database"
	"github.com/khankhulgun/maritimemap/database/migrations"
	"github.com/khankhulgun/maritimemap/database/seeds"
	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/metrics"
	"github.com/khankhulgun/maritimemap/presets"
	"github.com/khankhulgun/maritimemap/stylecache"
	"github.com/khankhulgun/maritimemap/tiles"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve styles, legends, glyphs and the tile archive over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadServiceConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			app, cleanup, err := newServer(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			return listen(ctx, app, cfg.Listen, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "service config file (toml)")

	return cmd
}

// loadServiceConfig reads the service config. A missing file at the default
// path falls back to the built-in defaults; an explicit path must exist.
func loadServiceConfig(path string, explicit bool) (*config.Config, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return config.NewConfig(), nil
		}
	}
	return config.Load(path)
}

// newServer wires every dependency into a fiber app. cleanup releases the
// cache and the database connection.
func newServer(cfg *config.Config, logger *log.Logger) (*fiber.App, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	base, err := readStyleConfig(cfg.StyleConfigPath)
	if err != nil {
		return nil, nil, err
	}
	if _, err := mapstyle.Merge(base); err != nil {
		return nil, nil, fmt.Errorf("style config %s: %w", cfg.StyleConfigPath, err)
	}

	cache, err := stylecache.New(cfg.Cache.NumCounters, cfg.Cache.MaxCost, cfg.Cache.TTL())
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, cache.Close)

	m := metrics.New()
	opts := maritimemap.Options{
		Cache:       cache,
		Metrics:     m,
		Logger:      logger,
		ArchivePath: cfg.ArchivePath,
		Base:        base,
		Glyphs: tiles.NewGlyphProxy(
			cfg.Glyphs.Upstream,
			cfg.Glyphs.Dir,
			cfg.Glyphs.RetryMax,
			time.Duration(cfg.Glyphs.TimeoutSec)*time.Second,
			logger,
			m,
		),
	}

	if _, err := os.Stat(cfg.ArchivePath); err != nil {
		logger.Warn("tile archive not readable", "path", cfg.ArchivePath, "err", err)
	}

	if cfg.Database.DSN != "" {
		db, err := database.Open(cfg.Database.DSN, logger.GetLevel() == log.DebugLevel)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, func() { sqlDB.Close() })
		}
		if cfg.Database.Migrate {
			if err := migrations.Migrate(db); err != nil {
				cleanup()
				return nil, nil, err
			}
			logger.Info("database migrated")
		}
		if cfg.Database.Seed {
			if err := seeds.Seed(db); err != nil {
				cleanup()
				return nil, nil, err
			}
			logger.Info("presets seeded")
		}
		opts.Presets = presets.NewStore(db)
	} else {
		logger.Debug("no database configured, presets disabled")
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	maritimemap.Set(app, opts)
	return app, cleanup, nil
}

// listen serves until ctx is cancelled, then shuts down gracefully.
func listen(ctx context.Context, app *fiber.App, addr string, logger *log.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()
	logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	}
}
