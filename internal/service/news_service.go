package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"stockdeck/internal/domain"
	"stockdeck/internal/fallback"
	"stockdeck/internal/resilience"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const newsCacheTTL = 5 * time.Minute

// NewsGenerator produces synthetic news through the generative model.
// A nil generator means the credential is absent and every call serves
// fallback data without an upstream round trip.
type NewsGenerator interface {
	MarketNews(ctx context.Context, market string, count int) ([]domain.NewsItem, error)
	StockNews(ctx context.Context, symbol string, count int) ([]domain.NewsItem, error)
}

// NewsProvider is the real news source behind the headlines path.
type NewsProvider interface {
	FetchNews(ctx context.Context, symbol string, count int) ([]domain.NewsItem, error)
}

type NewsService struct {
	tracer       trace.Tracer
	generator    NewsGenerator
	provider     NewsProvider
	redis        RedisClient
	retries      int
	initialDelay time.Duration
}

func NewNewsService(
	tracer trace.Tracer,
	generator NewsGenerator,
	provider NewsProvider,
	redisClient RedisClient,
	retries int,
	initialDelay time.Duration,
) *NewsService {
	return &NewsService{
		tracer:       tracer,
		generator:    generator,
		provider:     provider,
		redis:        redisClient,
		retries:      retries,
		initialDelay: initialDelay,
	}
}

// MarketNews returns generated market-wide news for a region ("global" or
// "india"), falling back to the fixed set when the model is unreachable or
// unconfigured.
func (s *NewsService) MarketNews(ctx context.Context, market string, count int) ([]domain.NewsItem, bool) {
	ctx, span := s.tracer.Start(ctx, "news-service.market-news")
	defer span.End()

	key := fmt.Sprintf("news:market:%s:%d", strings.ToLower(market), count)
	if cached := s.getNewsCache(ctx, key); cached != nil {
		return cached, false
	}

	if s.generator == nil {
		return truncateNews(fallback.News(), count), true
	}

	res := resilience.Fetch(ctx,
		func(ctx context.Context) ([]domain.NewsItem, error) {
			return s.generator.MarketNews(ctx, market, count)
		},
		func() []domain.NewsItem { return truncateNews(fallback.News(), count) },
		resilience.Options[[]domain.NewsItem]{
			Name:         "news-service.market",
			Retries:      s.retries,
			InitialDelay: s.initialDelay,
			Validate:     requireItems,
		},
	)

	if !res.UsedFallback {
		s.setNewsCache(ctx, key, res.Value)
	}
	return res.Value, res.UsedFallback
}

// StockNews returns generated symbol-specific news. The fallback set is
// customized with the symbol so the degraded response is not obviously
// generic.
func (s *NewsService) StockNews(ctx context.Context, symbol string, count int) ([]domain.NewsItem, bool) {
	ctx, span := s.tracer.Start(ctx, "news-service.stock-news")
	defer span.End()

	key := fmt.Sprintf("news:stock:%s:%d", strings.ToUpper(symbol), count)
	if cached := s.getNewsCache(ctx, key); cached != nil {
		return cached, false
	}

	if s.generator == nil {
		return truncateNews(fallback.NewsForSymbol(symbol), count), true
	}

	res := resilience.Fetch(ctx,
		func(ctx context.Context) ([]domain.NewsItem, error) {
			return s.generator.StockNews(ctx, symbol, count)
		},
		func() []domain.NewsItem { return truncateNews(fallback.NewsForSymbol(symbol), count) },
		resilience.Options[[]domain.NewsItem]{
			Name:         "news-service.stock",
			Retries:      s.retries,
			InitialDelay: s.initialDelay,
			Validate:     requireItems,
		},
	)

	if !res.UsedFallback {
		s.setNewsCache(ctx, key, res.Value)
	}
	return res.Value, res.UsedFallback
}

// Headlines returns real provider news for a symbol. Short live batches are
// padded from the customized fallback set up to count, and a padded response
// is reported as degraded.
func (s *NewsService) Headlines(ctx context.Context, symbol string, count int) ([]domain.NewsItem, bool) {
	ctx, span := s.tracer.Start(ctx, "news-service.headlines")
	defer span.End()

	key := fmt.Sprintf("news:headlines:%s:%d", strings.ToUpper(symbol), count)
	if cached := s.getNewsCache(ctx, key); cached != nil {
		return cached, false
	}

	res := resilience.Fetch(ctx,
		func(ctx context.Context) ([]domain.NewsItem, error) {
			return s.provider.FetchNews(ctx, symbol, count)
		},
		func() []domain.NewsItem { return nil },
		resilience.Options[[]domain.NewsItem]{
			Name:         "news-service.provider",
			Retries:      s.retries,
			InitialDelay: s.initialDelay,
		},
	)

	items := res.Value
	padded := false
	if len(items) < count {
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			seen[it.UUID] = true
		}
		for _, it := range fallback.NewsForSymbol(symbol) {
			if len(items) >= count {
				break
			}
			if seen[it.UUID] {
				continue
			}
			items = append(items, it)
			padded = true
		}
	}
	items = truncateNews(items, count)

	if !res.UsedFallback && !padded {
		s.setNewsCache(ctx, key, items)
	}
	return items, res.UsedFallback || padded
}

func truncateNews(items []domain.NewsItem, count int) []domain.NewsItem {
	if count > 0 && len(items) > count {
		return items[:count]
	}
	return items
}

func requireItems(items []domain.NewsItem) error {
	if len(items) == 0 {
		return fmt.Errorf("empty news batch")
	}
	return nil
}

func (s *NewsService) setNewsCache(ctx context.Context, key string, items []domain.NewsItem) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, newsCacheTTL).Err(); err != nil {
		log.Printf("redis cache write error for %s: %v", key, err)
	}
}

func (s *NewsService) getNewsCache(ctx context.Context, key string) []domain.NewsItem {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Printf("redis cache read error: %v", err)
		return nil
	}
	var items []domain.NewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}
