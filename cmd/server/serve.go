package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/WuFaChieh/Mostra-exhibition/internal/api"
	"github.com/WuFaChieh/Mostra-exhibition/internal/app"
	"github.com/WuFaChieh/Mostra-exhibition/internal/auth"
	"github.com/WuFaChieh/Mostra-exhibition/internal/insight"
	"github.com/WuFaChieh/Mostra-exhibition/internal/storage/memory"
	"github.com/WuFaChieh/Mostra-exhibition/internal/storage/seed"
	"github.com/WuFaChieh/Mostra-exhibition/internal/storage/sqlite"
)

const sweepInterval = time.Minute

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	var gen insight.Generator
	if cfg.GenAI.APIKey != "" {
		g, err := insight.NewGenAIGenerator(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model)
		if err != nil {
			return err
		}
		logger.Info("assistive text enabled", zap.String("generator", g.Name()))
		gen = g
	} else {
		logger.Warn("no GenAI API key configured, assistive text uses fallbacks")
	}
	assistant := insight.NewService(gen, cfg.GetGenAITimeout(), logger.Named("insight"))

	registry := app.NewRegistry(app.Deps{
		Store:  store,
		Login:  auth.MockLogin{Template: auth.DefaultAccount, Delay: cfg.GetLoginDelay()},
		Logger: logger.Named("session"),
	}, cfg.GetSessionTTL())
	tokens := auth.NewIssuer(cfg.Auth.TokenSecret, cfg.GetSessionTTL())

	srv := api.NewServer(api.Config{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}, registry, tokens, store, assistant, logger.Named("api"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return registry.Run(gctx, sweepInterval) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// openStore picks the catalogue backend. A fresh SQLite file is seeded on first use.
func openStore(ctx context.Context) (app.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		n, err := db.Seed(ctx, seed.Exhibitions())
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("sqlite catalogue ready", zap.String("path", cfg.Storage.SQLitePath), zap.Int("seeded", n))
		return db, func() { _ = db.Close() }, nil
	default:
		return memory.NewStore(), func() {}, nil
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := sqlite.Open(cfg.Storage.SQLitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.Seed(cmd.Context(), seed.Exhibitions())
	if err != nil {
		return err
	}
	logger.Info("seeded catalogue", zap.String("path", cfg.Storage.SQLitePath), zap.Int("inserted", n))
	return nil
}
