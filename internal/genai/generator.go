package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"stockdeck/internal/domain"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	placeholderTitle     = "Breaking News"
	placeholderPublisher = "Financial Times"
	placeholderContent   = "No content available"
)

// Generator produces synthetic news and recommendations from a generative
// model. The zero client is not allowed here; callers with no credential
// must short-circuit to fallback data before reaching the Generator.
type Generator struct {
	tracer trace.Tracer
	client Client

	// injectable for deterministic tests
	now  func() time.Time
	intn func(n int) int
}

func NewGenerator(tracer trace.Tracer, client Client) *Generator {
	return &Generator{
		tracer: tracer,
		client: client,
		now:    time.Now,
		intn:   rand.Intn,
	}
}

// MarketNews generates news items about a market region ("global" or
// "india").
func (g *Generator) MarketNews(ctx context.Context, market string, count int) ([]domain.NewsItem, error) {
	ctx, span := g.tracer.Start(ctx, "genai.market-news")
	defer span.End()
	span.SetAttributes(attribute.String("market", market))

	return g.generateNews(ctx, NewsPrompt(market, ""), count)
}

// StockNews generates news items about a single symbol.
func (g *Generator) StockNews(ctx context.Context, symbol string, count int) ([]domain.NewsItem, error) {
	ctx, span := g.tracer.Start(ctx, "genai.stock-news")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	return g.generateNews(ctx, NewsPrompt("global", symbol), count)
}

func (g *Generator) generateNews(ctx context.Context, prompt string, count int) ([]domain.NewsItem, error) {
	text, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raws, err := ExtractArray(text)
	if err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, len(raws))
	for _, raw := range raws {
		var rn rawNews
		if err := json.Unmarshal(raw, &rn); err != nil {
			return nil, fmt.Errorf("decode news element: %w", err)
		}
		items = append(items, g.enrich(rn))
		if len(items) == count {
			break
		}
	}
	return items, nil
}

// Recommendations generates stock recommendations. Unlike news there is no
// synthetic enrichment: every element must already satisfy the
// Recommendation shape or the whole call fails.
func (g *Generator) Recommendations(ctx context.Context) ([]domain.Recommendation, error) {
	ctx, span := g.tracer.Start(ctx, "genai.recommendations")
	defer span.End()

	text, err := g.client.Complete(ctx, RecommendationsPrompt())
	if err != nil {
		return nil, err
	}

	raws, err := ExtractArray(text)
	if err != nil {
		return nil, err
	}

	recs := make([]domain.Recommendation, 0, len(raws))
	for _, raw := range raws {
		var rec domain.Recommendation
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode recommendation: %w", err)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	span.SetAttributes(attribute.Int("recommendations", len(recs)))
	return recs, nil
}

type rawNews struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Content   string `json:"content"`
}

// enrich fills in everything the model cannot provide: identity, a
// placeholder thumbnail, a plausible recent timestamp, and the sentinel
// link marking the item as synthetic.
func (g *Generator) enrich(rn rawNews) domain.NewsItem {
	item := domain.NewsItem{
		UUID:                uuid.NewString(),
		Title:               rn.Title,
		Publisher:           rn.Publisher,
		Content:             rn.Content,
		Link:                domain.SyntheticLink,
		Type:                domain.NewsTypeStory,
		ProviderPublishTime: g.randomRecentTimestamp(),
		Thumbnail:           placeholderThumbnail(g.intn(100) + 1),
	}
	if item.Title == "" {
		item.Title = placeholderTitle
	}
	if item.Publisher == "" {
		item.Publisher = placeholderPublisher
	}
	if item.Content == "" {
		item.Content = placeholderContent
	}
	return item
}

// randomRecentTimestamp picks a uniform moment within the past 24 hours,
// in whole seconds.
func (g *Generator) randomRecentTimestamp() int64 {
	hoursAgo := time.Duration(g.intn(24)) * time.Hour
	minutesAgo := time.Duration(g.intn(60)) * time.Minute
	return g.now().Add(-(hoursAgo + minutesAgo)).Unix()
}

func placeholderThumbnail(imageIndex int) *domain.Thumbnail {
	base := fmt.Sprintf("https://picsum.photos/id/%d", imageIndex)
	return &domain.Thumbnail{
		Resolutions: []domain.ThumbnailResolution{
			{URL: base + "/800/400", Width: 800, Height: 400, Tag: "original"},
			{URL: base + "/400/200", Width: 400, Height: 200, Tag: "resized"},
		},
	}
}
