package hltv

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("hltv-crawler.lib.scrapers.hltv")
var meter = otel.Meter("hltv-crawler.lib.scrapers.hltv")

var recordsCounter, _ = meter.Int64Counter("hltv.ranking.records")
var searchCounter, _ = meter.Int64Counter("hltv.search.results")
