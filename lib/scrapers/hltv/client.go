package hltv

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hltv-crawler/internal/assert"
	"hltv-crawler/internal/telemetry"
	"hltv-crawler/lib/pagecache"
	"hltv-crawler/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

const (
	report_client_fetch   = "client.fetch"
	report_client_ranking = "client.ranking"
	report_client_search  = "client.search"
	report_client_cache   = "client.cache"
)

// DefaultHeaders are sent with every request unless overridden.
var DefaultHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (X11; Linux x86_64; rv:103.0) Gecko/20100101 Firefox/103.0",
	"Accept":     "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
}

type ClientOptions struct {
	Site Site
	// merged over DefaultHeaders
	Headers map[string]string
	// defaults to 30 seconds
	Timeout time.Duration
	// 0 means unlimited
	RequestsPerSecond float64
	// wraps the transport so requests look like they come from a browser,
	// needed when talking to the real site
	CloudflareBypass bool
	// defaults to telemetry.SlogAPI
	Telemetry telemetry.API
	// if set, every request/response is dumped to it while debug logging is enabled
	DebugOutput restyutil.InstrumentOutput
	// successful pages are kept here for CacheTTL, nil disables caching
	Cache    pagecache.Cache
	CacheTTL time.Duration
}

// Response is the raw result of fetching a page.
type Response struct {
	Url         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client fetches pages from the site and runs them through the extractors.
type Client struct {
	site     Site
	http     *resty.Client
	tel      telemetry.API
	cache    pagecache.Cache
	cacheTTL time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	assert.NotEmptyStr(opts.Site.BaseUrl, "site base url")

	_, err := url.Parse(opts.Site.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("hltv: parse base url: %w", err)
	}

	tel := opts.Telemetry
	if tel == nil {
		tel = telemetry.SlogAPI{}
	}
	tel = telemetry.NewScopedAPI("hltv", tel)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = time.Second * 30
	}

	httpClient := resty.New()
	httpClient.SetTimeout(timeout)
	httpClient.SetHeaders(DefaultHeaders)
	httpClient.SetHeaders(opts.Headers)
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	// burst of 1 keeps requests evenly spaced out
	rateLimiter := rate.NewLimiter(limit, 1)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return rateLimiter.Wait(req.Context())
	})

	restyutil.InstrumentClient(httpClient, tracer, opts.DebugOutput)

	return &Client{
		site:     opts.Site,
		http:     httpClient,
		tel:      tel,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
	}, nil
}

func (c *Client) Site() Site {
	return c.site
}

// Fetch gets a page, anything other than a 200 is returned as a *TransportError.
// only successful pages are cached.
func (c *Client) Fetch(ctx context.Context, link string) (Response, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, link)
		if err != nil {
			c.tel.ReportWarning(report_client_cache, fmt.Errorf("get: %w", err), link)
		} else if ok {
			c.tel.ReportDebug("cache hit", link)
			// the content type is not cached, ParseDocument sniffs the charset instead
			return Response{Url: link, StatusCode: http.StatusOK, Body: body}, nil
		}
	}

	c.tel.ReportDebug(report_client_fetch, link)

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch, fmt.Errorf("request: %w", err), link)
		return Response{}, &TransportError{Url: link, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		c.tel.ReportWarning(report_client_fetch, fmt.Errorf("unexpected status: %d", res.StatusCode()), link)
		return Response{}, &TransportError{Url: link, StatusCode: res.StatusCode()}
	}

	if c.cache != nil {
		err = c.cache.Set(ctx, link, res.Body(), c.cacheTTL)
		if err != nil {
			c.tel.ReportWarning(report_client_cache, fmt.Errorf("set: %w", err), link)
		}
	}

	return Response{
		Url:         link,
		StatusCode:  res.StatusCode(),
		ContentType: res.Header().Get("Content-Type"),
		Body:        res.Body(),
	}, nil
}

// Ranking fetches and extracts the ranking page selected by req.
func (c *Client) Ranking(ctx context.Context, req RankingRequest) ([]RankingRecord, error) {
	ctx, span := tracer.Start(ctx, "Ranking")
	defer span.End()

	link, err := c.site.RankingUrl(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("url", link))

	res, err := c.Fetch(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	doc, err := ParseDocument(bytes.NewReader(res.Body), res.ContentType)
	if err != nil {
		c.tel.ReportBroken(report_client_ranking, err, link)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	records := ExtractRankingPage(doc)
	if len(records) == 0 {
		c.tel.ReportWarning(report_client_ranking, fmt.Errorf("no teams found"), link)
	}
	c.tel.ReportCount(report_client_ranking, int64(len(records)))
	recordsCounter.Add(ctx, int64(len(records)))

	return records, nil
}

// Search runs a keyword search on the site and classifies the results. a
// blank query matches nothing and is never sent to the site.
func (c *Client) Search(ctx context.Context, query string) (SearchResult, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	span.SetAttributes(attribute.String("query", query))
	if strings.TrimSpace(query) == "" {
		return SearchResult{}, nil
	}

	link := c.site.SearchUrl(query)
	res, err := c.Fetch(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SearchResult{}, err
	}
	doc, err := ParseDocument(bytes.NewReader(res.Body), res.ContentType)
	if err != nil {
		c.tel.ReportBroken(report_client_search, err, link)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SearchResult{}, err
	}

	result := ClassifySearchResults(doc)
	searchCounter.Add(ctx, int64(result.Count()))

	return result, nil
}
