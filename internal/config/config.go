package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hltv-crawler/internal/telemetry"
	"hltv-crawler/lib/configutil"
	"hltv-crawler/lib/pagecache"
	"hltv-crawler/lib/rankingstore"
	"hltv-crawler/lib/restyutil"
	"hltv-crawler/lib/scrapers/hltv"
)

type HttpConfig struct {
	TimeoutSeconds    int     `json:"timeout_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	// talk to the site with a plain transport instead of the cloudflare bypass
	PlainTransport bool              `json:"plain_transport"`
	Headers        map[string]string `json:"headers"`
}

type CacheConfig struct {
	// redis://host:port/db, an in-memory cache is used when empty
	RedisUrl   string `json:"redis_url"`
	TtlSeconds int    `json:"ttl_seconds"`
}

// Config is shared by hltv-cli and hltv-server.
type Config struct {
	Site     hltv.Site           `json:"site"`
	Http     HttpConfig          `json:"http"`
	Cache    CacheConfig         `json:"cache"`
	Database rankingstore.Config `json:"database"`
	Port     int                 `json:"port"`
	// request/response dumps are written here when verbose
	DebugDir string `json:"debug_dir"`
}

func Defaults() Config {
	return Config{
		Site: hltv.DefaultSite(),
		Http: HttpConfig{
			TimeoutSeconds: 30,
			// the site starts rejecting requests when crawled too fast
			RequestsPerSecond: 1,
		},
		Port:     8000,
		DebugDir: ".dev/resty",
	}
}

// Load reads config.json5 (or the given path) over the defaults, a missing
// file leaves the defaults as they are.
func Load(path string) (Config, error) {
	if path == "" {
		path = "config.json5"
	}
	config, err := configutil.ReadOrDefault(path, Defaults())
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return config, nil
}

// ClientOptions turns the config into options for an hltv client, cache
// is optional.
func (c Config) ClientOptions(tel telemetry.API, cache pagecache.Cache, verbose bool) hltv.ClientOptions {
	opts := hltv.ClientOptions{
		Site:              c.Site,
		Headers:           c.Http.Headers,
		Timeout:           time.Duration(c.Http.TimeoutSeconds) * time.Second,
		RequestsPerSecond: c.Http.RequestsPerSecond,
		CloudflareBypass:  !c.Http.PlainTransport,
		Telemetry:         tel,
		Cache:             cache,
		CacheTTL:          time.Duration(c.Cache.TtlSeconds) * time.Second,
	}
	if verbose && c.DebugDir != "" {
		output, err := restyutil.NewFilesystemOutput(c.DebugDir)
		if err != nil {
			slog.Warn("failed to create debug output, requests will not be dumped", "dir", c.DebugDir, "err", err)
		} else {
			opts.DebugOutput = output
		}
	}
	return opts
}

// OpenCache connects to redis if configured, otherwise it returns an
// in-memory cache. a ttl of 0 disables caching entirely.
func (c Config) OpenCache(ctx context.Context) (pagecache.Cache, func() error, error) {
	noop := func() error { return nil }
	if c.Cache.TtlSeconds <= 0 {
		return nil, noop, nil
	}
	if c.Cache.RedisUrl == "" {
		return pagecache.NewMemory(), noop, nil
	}
	cache, err := pagecache.OpenRedis(ctx, c.Cache.RedisUrl)
	if err != nil {
		return nil, noop, err
	}
	return cache, cache.Close, nil
}
