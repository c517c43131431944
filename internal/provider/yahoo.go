package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"stockdeck/internal/domain"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider fetches quotes and news from a Yahoo-wire-compatible
// market-data API.
type YahooProvider struct {
	client  *resty.Client
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewYahooProvider creates a provider with built-in rate limiting
// (30 requests per minute, one token every 2 seconds). An empty baseURL
// selects the public endpoint.
func NewYahooProvider(tracer trace.Tracer, baseURL string) *YahooProvider {
	if baseURL == "" {
		baseURL = yahooBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})

	return &YahooProvider{
		client:  client,
		tracer:  tracer,
		limiter: NewRateLimiter(30, 2*time.Second),
	}
}

// FetchQuotes looks up each symbol concurrently and returns the successful
// snapshots in input order. A failed lookup drops that symbol only; the
// call errors only when every lookup failed, so the resilience layer can
// retry the whole batch.
func (p *YahooProvider) FetchQuotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, error) {
	ctx, span := p.tracer.Start(ctx, "yahoo.fetch-quotes")
	defer span.End()
	span.SetAttributes(attribute.Int("symbol_count", len(symbols)))

	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols to fetch")
	}

	results := make([]*domain.QuoteSnapshot, len(symbols))
	errs := make([]error, len(symbols))

	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			snap, err := p.fetchQuote(ctx, symbol)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = snap
		}(i, symbol)
	}
	wg.Wait()

	quotes := make([]domain.QuoteSnapshot, 0, len(symbols))
	var lastErr error
	for i := range results {
		if results[i] != nil {
			quotes = append(quotes, *results[i])
			continue
		}
		lastErr = errs[i]
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("all %d quote lookups failed: %w", len(symbols), lastErr)
	}
	span.SetAttributes(attribute.Int("quotes_returned", len(quotes)))
	return quotes, nil
}

// FetchNews issues a single search-style query and returns at most count
// items.
func (p *YahooProvider) FetchNews(ctx context.Context, symbol string, count int) ([]domain.NewsItem, error) {
	ctx, span := p.tracer.Start(ctx, "yahoo.fetch-news")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var raw searchResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           symbol,
			"newsCount":   fmt.Sprintf("%d", count),
			"quotesCount": "0",
		}).
		SetResult(&raw).
		Get("/v1/finance/search")
	if err != nil {
		return nil, fmt.Errorf("fetch news for %s: %w", symbol, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("news API error %d for %s", resp.StatusCode(), symbol)
	}

	items := make([]domain.NewsItem, 0, len(raw.News))
	for _, n := range raw.News {
		item := domain.NewsItem{
			UUID:                n.UUID,
			Title:               n.Title,
			Publisher:           n.Publisher,
			Link:                n.Link,
			ProviderPublishTime: n.ProviderPublishTime,
			Type:                n.Type,
		}
		if n.Thumbnail != nil && len(n.Thumbnail.Resolutions) > 0 {
			thumb := &domain.Thumbnail{Resolutions: make([]domain.ThumbnailResolution, 0, len(n.Thumbnail.Resolutions))}
			for _, r := range n.Thumbnail.Resolutions {
				thumb.Resolutions = append(thumb.Resolutions, domain.ThumbnailResolution{
					URL: r.URL, Width: r.Width, Height: r.Height, Tag: r.Tag,
				})
			}
			item.Thumbnail = thumb
		}
		if err := item.Validate(); err != nil {
			continue
		}
		items = append(items, item)
		if len(items) == count {
			break
		}
	}
	return items, nil
}

func (p *YahooProvider) fetchQuote(ctx context.Context, symbol string) (*domain.QuoteSnapshot, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var raw quoteSummaryResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("modules", "price").
		SetResult(&raw).
		Get("/v10/finance/quoteSummary/" + symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch quote for %s: %w", symbol, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("quote API error %d for %s", resp.StatusCode(), symbol)
	}
	if len(raw.QuoteSummary.Result) == 0 || raw.QuoteSummary.Result[0].Price == nil {
		return nil, fmt.Errorf("no price data for %s", symbol)
	}

	price := raw.QuoteSummary.Result[0].Price
	snap := domain.QuoteSnapshot{
		Symbol:                     price.Symbol,
		ShortName:                  price.ShortName,
		RegularMarketPrice:         price.RegularMarketPrice.Raw,
		RegularMarketChange:        price.RegularMarketChange.Raw,
		RegularMarketChangePercent: price.RegularMarketChangePercent.Raw,
		Currency:                   price.Currency,
	}
	if price.RegularMarketTime.Set {
		snap.RegularMarketTime = time.Unix(int64(price.RegularMarketTime.Raw), 0).UTC()
	}
	// Optional fields stay absent when the payload omits them, never zero.
	if price.RegularMarketDayHigh.Set {
		v := price.RegularMarketDayHigh.Raw
		snap.RegularMarketDayHigh = &v
	}
	if price.RegularMarketDayLow.Set {
		v := price.RegularMarketDayLow.Raw
		snap.RegularMarketDayLow = &v
	}
	if price.RegularMarketVolume.Set {
		v := int64(price.RegularMarketVolume.Raw)
		snap.RegularMarketVolume = &v
	}
	if price.MarketCap.Set {
		v := int64(price.MarketCap.Raw)
		snap.MarketCap = &v
	}

	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quote payload: %w", err)
	}
	return &snap, nil
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price *priceModule `json:"price"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteSummary"`
}

type priceModule struct {
	Symbol                     string `json:"symbol"`
	ShortName                  string `json:"shortName"`
	Currency                   string `json:"currency"`
	RegularMarketPrice         yValue `json:"regularMarketPrice"`
	RegularMarketChange        yValue `json:"regularMarketChange"`
	RegularMarketChangePercent yValue `json:"regularMarketChangePercent"`
	RegularMarketTime          yValue `json:"regularMarketTime"`
	RegularMarketDayHigh       yValue `json:"regularMarketDayHigh"`
	RegularMarketDayLow        yValue `json:"regularMarketDayLow"`
	RegularMarketVolume        yValue `json:"regularMarketVolume"`
	MarketCap                  yValue `json:"marketCap"`
}

type searchResponse struct {
	News []struct {
		UUID                string `json:"uuid"`
		Title               string `json:"title"`
		Publisher           string `json:"publisher"`
		Link                string `json:"link"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
		Type                string `json:"type"`
		Thumbnail           *struct {
			Resolutions []struct {
				URL    string `json:"url"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
				Tag    string `json:"tag"`
			} `json:"resolutions"`
		} `json:"thumbnail"`
	} `json:"news"`
}

// yValue decodes Yahoo's numeric fields, which arrive either as bare
// numbers or as {raw, fmt} objects depending on endpoint. Set distinguishes
// a genuine zero from an absent field.
type yValue struct {
	Raw float64
	Set bool
}

func (v *yValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" || string(b) == "{}" {
		return nil
	}
	if b[0] == '{' {
		var obj struct {
			Raw *float64 `json:"raw"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		if obj.Raw != nil {
			v.Raw, v.Set = *obj.Raw, true
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	v.Raw, v.Set = f, true
	return nil
}
