package main

import (
	"context"
	"log"
	"os"
	"time"

	"stockdeck/internal/cache"
	"stockdeck/internal/config"
	"stockdeck/internal/domain"
	"stockdeck/internal/genai"
	"stockdeck/internal/provider"
	"stockdeck/internal/service"
	"stockdeck/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type quotesInput struct {
	Symbols []string `json:"symbols" jsonschema:"stock symbols to look up, e.g. AAPL or RELIANCE.NS"`
}

type quotesOutput struct {
	Quotes       []domain.QuoteSnapshot `json:"quotes"`
	UsedFallback bool                   `json:"usedFallback"`
}

type newsInput struct {
	Symbol string `json:"symbol,omitempty" jsonschema:"optional stock symbol; omit for market-wide news"`
	Market string `json:"market,omitempty" jsonschema:"market region, global or india"`
	Count  int    `json:"count,omitempty" jsonschema:"number of items, default 10"`
}

type newsOutput struct {
	Items        []domain.NewsItem `json:"items"`
	UsedFallback bool              `json:"usedFallback"`
}

type recsInput struct{}

type recsOutput struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	UsedFallback    bool                    `json:"usedFallback"`
}

type toolBackend struct {
	quotes quoteSource
	news   newsSource
	recs   recsSource
}

type quoteSource interface {
	Quotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, bool)
}

type newsSource interface {
	MarketNews(ctx context.Context, market string, count int) ([]domain.NewsItem, bool)
	Headlines(ctx context.Context, symbol string, count int) ([]domain.NewsItem, bool)
}

type recsSource interface {
	Recommendations(ctx context.Context) ([]domain.Recommendation, bool)
}

func (b *toolBackend) getQuotes(ctx context.Context, req *mcp.CallToolRequest, in quotesInput) (*mcp.CallToolResult, quotesOutput, error) {
	quotes, usedFallback := b.quotes.Quotes(ctx, in.Symbols)
	return nil, quotesOutput{Quotes: quotes, UsedFallback: usedFallback}, nil
}

func (b *toolBackend) getNews(ctx context.Context, req *mcp.CallToolRequest, in newsInput) (*mcp.CallToolResult, newsOutput, error) {
	count := in.Count
	if count <= 0 || count > 50 {
		count = 10
	}
	var items []domain.NewsItem
	var usedFallback bool
	if in.Symbol != "" {
		items, usedFallback = b.news.Headlines(ctx, in.Symbol, count)
	} else {
		market := in.Market
		if market == "" {
			market = "global"
		}
		items, usedFallback = b.news.MarketNews(ctx, market, count)
	}
	return nil, newsOutput{Items: items, UsedFallback: usedFallback}, nil
}

func (b *toolBackend) getRecommendations(ctx context.Context, req *mcp.CallToolRequest, in recsInput) (*mcp.CallToolResult, recsOutput, error) {
	recs, usedFallback := b.recs.Recommendations(ctx)
	return nil, recsOutput{Recommendations: recs, UsedFallback: usedFallback}, nil
}

func newMCPServer(backend *toolBackend) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "stockdeck", Version: "1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_quotes",
		Description: "Get current quote snapshots for one or more stock symbols",
	}, backend.getQuotes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_news",
		Description: "Get financial news, market-wide or for a specific symbol",
	}, backend.getNews)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_recommendations",
		Description: "Get the current stock recommendations",
	}, backend.getRecommendations)

	return server
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Setenv("REDIS_URL", cfg.RedisURL)
	cache.InitRedis(ctx)

	tp, tracer, err := tracing.InitTracer(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	initialDelay := time.Duration(cfg.FetchInitialDelayMS) * time.Millisecond

	yahoo := provider.NewYahooProvider(tracer, cfg.YahooBaseURL)
	quoteService := service.NewQuoteService(tracer, yahoo, service.WrapRedis(cache.Client), cfg.FetchRetries, initialDelay)

	var newsGen service.NewsGenerator
	var recGen service.RecommendationGenerator
	if cfg.GeminiAPIKey != "" {
		client := genai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
		generator := genai.NewGenerator(tracer, client)
		newsGen = generator
		recGen = generator
	}
	newsService := service.NewNewsService(tracer, newsGen, yahoo, service.WrapRedis(cache.Client), cfg.FetchRetries, initialDelay)
	recService := service.NewRecommendationService(tracer, recGen, service.WrapRedis(cache.Client), cfg.FetchRetries, initialDelay)

	server := newMCPServer(&toolBackend{
		quotes: quoteService,
		news:   newsService,
		recs:   recService,
	})

	log.Println("MCP server running on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
