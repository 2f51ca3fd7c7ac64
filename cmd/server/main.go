// Package main - Entry point for the checkout API server
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"checkout/api"
	"checkout/core/catalog"
	"checkout/core/pricing"
	"checkout/core/purchase"
	"checkout/db"
	"checkout/gateways"
	"checkout/gateways/paypal"
	"checkout/gateways/stripe"
	"checkout/internal/config"
	"checkout/internal/errors"
	"checkout/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	store, err := buildStore(cfg)
	if err != nil {
		logging.Fatal("failed to build catalog store", zap.Error(err))
	}

	registry := gateways.NewRegistry()
	if err := registry.Register(paypal.New(cfg.Gateways.Paypal)); err != nil {
		logging.Fatal("failed to register paypal backend", zap.Error(err))
	}
	if err := registry.Register(stripe.New(cfg.Gateways.Stripe)); err != nil {
		logging.Fatal("failed to register stripe backend", zap.Error(err))
	}

	calculator := pricing.NewCalculator(store)
	purchases := purchase.NewService(calculator, registry)
	server := api.NewServer(version, calculator, purchases, registry)

	logging.Info("checkout server starting",
		zap.String("address", cfg.Server.Address),
		zap.String("catalog_driver", cfg.Catalog.Driver),
		zap.Strings("backends", registry.Names()))

	if err := server.ListenAndServe(cfg.Server); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}

// buildStore assembles the catalog store from configuration: in-memory
// fixtures by default, MySQL when configured, with an optional redis
// read-through cache in front.
func buildStore(cfg *config.Config) (catalog.Store, error) {
	var store catalog.Store

	switch cfg.Catalog.Driver {
	case "", "memory":
		store = catalog.NewFixtureStore()
	case "mysql":
		sqlStore, err := db.Open(cfg.Catalog.DSN)
		if err != nil {
			return nil, err
		}
		if cfg.Catalog.Migrate {
			if err := sqlStore.Migrate(); err != nil {
				return nil, err
			}
		}
		store = sqlStore
	default:
		return nil, errors.Newf(errors.TypeConfig, "unknown catalog driver: %s", cfg.Catalog.Driver)
	}

	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.Address})
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		store = db.NewCachedStore(store, rdb, ttl)
	}

	return store, nil
}
