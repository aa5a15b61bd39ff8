package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/cli"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storefront/internal/client/router"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFormat, os.Stderr, cfg.Debug)
	if err != nil {
		return err
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	db, err := storage.Open(ctx, cfg.StoragePath)
	if err != nil {
		return err
	}
	defer db.Close()

	store := session.New(nil, metadata.NewSQLiteRepository(db), logger)
	if err := store.Restore(ctx); err != nil {
		return err
	}

	client := api.New(cfg.APIBaseURL, store,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(logger),
	)
	store.SetAuthenticator(client)

	nav, err := router.New(store, router.DefaultRoutes()...)
	if err != nil {
		return err
	}

	app := cli.NewApp(cfg, store, client, nav, logger, os.Stdin, os.Stdout)
	return app.Run(ctx)
}
