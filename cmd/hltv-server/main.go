package main

import (
	"flag"

	"hltv-crawler/internal/api"
	"hltv-crawler/internal/chrono"
	"hltv-crawler/internal/config"
	"hltv-crawler/internal/telemetry"
	"hltv-crawler/lib/rankingstore"
	"hltv-crawler/lib/scrapers/hltv"
	"hltv-crawler/lib/serviceutil"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "Path to the config file.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	cache, closeCache, err := cfg.OpenCache(ctx)
	if err != nil {
		serviceutil.Fatal("open page cache", err)
	}
	defer closeCache()

	client, err := hltv.NewClient(cfg.ClientOptions(telemetry.SlogAPI{}, cache, *verbose))
	if err != nil {
		serviceutil.Fatal("init hltv client", err)
	}

	var store *rankingstore.Store
	if cfg.Database.Enabled() {
		store, err = rankingstore.Open(ctx, cfg.Database)
		if err != nil {
			serviceutil.Fatal("open ranking store", err)
		}
		defer store.Close()
	}

	server := api.NewServer(api.Options{
		Client:    client,
		Store:     store,
		Time:      chrono.StandardImpl{},
		Telemetry: telemetry.SlogAPI{},
	})

	err = serviceutil.StartHttpServer(ctx, cfg.Port, server.Handler())
	if err != nil {
		serviceutil.Fatal("serve http", err)
	}
}
