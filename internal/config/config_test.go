package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hltv-crawler/lib/pagecache"
	"hltv-crawler/lib/scrapers/hltv"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	require.Equal(t, hltv.DefaultBaseUrl, config.Site.BaseUrl)
	require.Equal(t, hltv.DefaultRegions, config.Site.Regions)
	require.Equal(t, 8000, config.Port)
	require.False(t, config.Database.Enabled())
	require.True(t, config.ClientOptions(nil, nil, false).CloudflareBypass)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{
		site: {base_url: "http://localhost:3000"},
		http: {timeout_seconds: 5, plain_transport: true, headers: {"Accept-Language": "en"}},
		database: {file: "rankings.db"},
		cache: {ttl_seconds: 60},
		port: 9000,
	}`), 0644))

	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3000", config.Site.BaseUrl)
	// untouched fields keep their defaults
	require.Equal(t, hltv.DefaultRegions, config.Site.Regions)
	require.Equal(t, 1.0, config.Http.RequestsPerSecond)
	require.Equal(t, "rankings.db", config.Database.File)
	require.Equal(t, 9000, config.Port)

	opts := config.ClientOptions(nil, nil, false)
	require.Equal(t, 5*time.Second, opts.Timeout)
	require.False(t, opts.CloudflareBypass)
	require.Equal(t, time.Minute, opts.CacheTTL)
	require.Equal(t, map[string]string{"Accept-Language": "en"}, opts.Headers)
	require.Nil(t, opts.DebugOutput)
}

func TestClientOptionsDebugOutput(t *testing.T) {
	config := Defaults()
	config.DebugDir = filepath.Join(t.TempDir(), "resty")

	opts := config.ClientOptions(nil, nil, true)
	require.NotNil(t, opts.DebugOutput)
	_, err := os.Stat(config.DebugDir)
	require.NoError(t, err)
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()
	config := Defaults()

	cache, closer, err := config.OpenCache(ctx)
	require.NoError(t, err)
	require.Nil(t, cache)
	require.NoError(t, closer())

	config.Cache.TtlSeconds = 60
	cache, _, err = config.OpenCache(ctx)
	require.NoError(t, err)
	require.IsType(t, &pagecache.Memory{}, cache)

	mr := miniredis.RunT(t)
	config.Cache.RedisUrl = "redis://" + mr.Addr()
	cache, closer, err = config.OpenCache(ctx)
	require.NoError(t, err)
	require.IsType(t, pagecache.Redis{}, cache)
	require.NoError(t, closer())
}
