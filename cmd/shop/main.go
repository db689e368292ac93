package main

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	"CatShop/internal/catalog"
	"CatShop/internal/config"
	"CatShop/internal/session"
	"CatShop/internal/user"
	"CatShop/internal/web"
	"CatShop/pkg/kit"
)

func main() {
	service := "shop"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config failed", zap.Error(err))
	}

	users, products, err := buildStores(cfg, log)
	if err != nil {
		log.Fatal("init stores failed", zap.Error(err))
	}

	view, err := web.NewView(log)
	if err != nil {
		log.Fatal("parse templates failed", zap.Error(err))
	}

	s := &web.Server{
		Log:      log,
		Users:    users,
		Catalog:  products,
		Sessions: session.NewManager(cfg.SessionSecret, cfg.SessionTTL),
		View:     view,
	}

	h := web.NewHandler(s, web.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(cfg.Address, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// buildStores wires memory-backed stores by default and Postgres-backed
// ones when DATABASE_DSN is set.
func buildStores(cfg config.Config, log *zap.Logger) (user.Store, catalog.Store, error) {
	if cfg.DatabaseDSN == "" {
		return user.NewMemStore(), catalog.NewMemStore(catalog.Seed()), nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	log.Info("using postgres stores")
	return user.NewPostgresStore(db), catalog.NewPostgresStore(db), nil
}
