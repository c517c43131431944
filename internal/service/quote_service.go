package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stockdeck/internal/domain"
	"stockdeck/internal/resilience"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const quoteCacheTTL = 90 * time.Second

// QuoteProvider is the upstream market-data adapter consumed by QuoteService.
type QuoteProvider interface {
	FetchQuotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, error)
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// WrapRedis adapts a concrete client pointer for the service constructors.
// A nil pointer maps to a nil interface, so the cacheless guards fire
// instead of dereferencing a typed nil when Redis is unavailable.
func WrapRedis(client *redis.Client) RedisClient {
	if client == nil {
		return nil
	}
	return client
}

// QuoteService serves quote snapshots from a short-TTL cache backed by the
// provider, always through the retry-then-fallback policy.
type QuoteService struct {
	tracer       trace.Tracer
	provider     QuoteProvider
	redis        RedisClient
	retries      int
	initialDelay time.Duration
}

func NewQuoteService(
	tracer trace.Tracer,
	provider QuoteProvider,
	redisClient RedisClient,
	retries int,
	initialDelay time.Duration,
) *QuoteService {
	return &QuoteService{
		tracer:       tracer,
		provider:     provider,
		redis:        redisClient,
		retries:      retries,
		initialDelay: initialDelay,
	}
}

// Quotes returns one snapshot per resolvable symbol, cached entries first.
// The second return reports whether any part of the answer is degraded:
// symbols that could not be fetched live are simply absent, and an empty
// slice with usedFallback=true means the provider was unreachable.
func (s *QuoteService) Quotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, bool) {
	ctx, span := s.tracer.Start(ctx, "quote-service.quotes")
	defer span.End()

	var quotes []domain.QuoteSnapshot
	var missing []string

	for _, symbol := range symbols {
		if s.redis != nil {
			if cached := s.getQuoteCache(ctx, symbol); cached != nil {
				quotes = append(quotes, *cached)
				continue
			}
		}
		missing = append(missing, symbol)
	}

	if len(missing) == 0 {
		return quotes, false
	}

	res := resilience.Fetch(ctx,
		func(ctx context.Context) ([]domain.QuoteSnapshot, error) {
			return s.provider.FetchQuotes(ctx, missing)
		},
		func() []domain.QuoteSnapshot { return nil },
		resilience.Options[[]domain.QuoteSnapshot]{
			Name:         "quote-service.fetch",
			Retries:      s.retries,
			InitialDelay: s.initialDelay,
		},
	)

	if !res.UsedFallback {
		for _, snap := range res.Value {
			if s.redis != nil {
				if err := s.setQuoteCache(ctx, snap); err != nil {
					log.Printf("redis cache write error for %s: %v", snap.Symbol, err)
				}
			}
		}
	}

	return append(quotes, res.Value...), res.UsedFallback
}

func (s *QuoteService) setQuoteCache(ctx context.Context, snapshot domain.QuoteSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, "quote:"+snapshot.Symbol, data, quoteCacheTTL).Err()
}

func (s *QuoteService) getQuoteCache(ctx context.Context, symbol string) *domain.QuoteSnapshot {
	data, err := s.redis.Get(ctx, "quote:"+symbol).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Printf("redis cache read error: %v", err)
		return nil
	}
	var snapshot domain.QuoteSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil
	}
	return &snapshot
}
