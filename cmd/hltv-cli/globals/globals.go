package globals

import (
	"context"

	"hltv-crawler/internal/config"
	"hltv-crawler/lib/scrapers/hltv"
)

type keyType int

const key keyType = 0

type Value struct {
	Config config.Config
	Client *hltv.Client
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key).(*Value)
}
