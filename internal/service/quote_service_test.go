package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stockdeck/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

func TestQuoteService_CacheHitSkipsProvider(t *testing.T) {
	t.Parallel()

	fake := newFakeRedis()
	snap := domain.QuoteSnapshot{Symbol: "AAPL", RegularMarketPrice: 187.5}
	data, _ := json.Marshal(snap)
	_ = fake.Set(context.Background(), "quote:AAPL", data, 0)

	provider := &mockQuoteProvider{}
	svc := NewQuoteService(testTracer, provider, fake, 0, time.Millisecond)

	quotes, usedFallback := svc.Quotes(context.Background(), []string{"AAPL"})
	if usedFallback {
		t.Fatal("cache hit should not be degraded")
	}
	if len(quotes) != 1 || quotes[0].RegularMarketPrice != 187.5 {
		t.Fatalf("unexpected quotes: %+v", quotes)
	}
	if provider.calls != 0 {
		t.Fatalf("provider should not be called on cache hit, got %d calls", provider.calls)
	}
}

func TestQuoteService_FetchesMissingAndCaches(t *testing.T) {
	t.Parallel()

	fake := newFakeRedis()
	cached := domain.QuoteSnapshot{Symbol: "AAPL", RegularMarketPrice: 1}
	data, _ := json.Marshal(cached)
	_ = fake.Set(context.Background(), "quote:AAPL", data, 0)

	provider := &mockQuoteProvider{
		quotes: []domain.QuoteSnapshot{{Symbol: "MSFT", RegularMarketPrice: 2}},
	}
	svc := NewQuoteService(testTracer, provider, fake, 0, time.Millisecond)

	quotes, usedFallback := svc.Quotes(context.Background(), []string{"AAPL", "MSFT"})
	if usedFallback {
		t.Fatal("live fetch should not be degraded")
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if len(provider.lastSymbols) != 1 || provider.lastSymbols[0] != "MSFT" {
		t.Fatalf("expected only the missing symbol fetched, got %v", provider.lastSymbols)
	}
	if _, ok := fake.data["quote:MSFT"]; !ok {
		t.Fatal("live quote not cached")
	}
}

func TestQuoteService_ProviderDownServesEmptyDegraded(t *testing.T) {
	t.Parallel()

	provider := &mockQuoteProvider{err: errors.New("upstream down")}
	svc := NewQuoteService(testTracer, provider, nil, 2, time.Millisecond)

	quotes, usedFallback := svc.Quotes(context.Background(), []string{"AAPL"})
	if !usedFallback {
		t.Fatal("expected degraded result")
	}
	if len(quotes) != 0 {
		t.Fatalf("expected empty quotes, got %+v", quotes)
	}
	if provider.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", provider.calls)
	}
}

func TestQuoteService_CachedSurviveProviderOutage(t *testing.T) {
	t.Parallel()

	fake := newFakeRedis()
	snap := domain.QuoteSnapshot{Symbol: "AAPL", RegularMarketPrice: 187.5}
	data, _ := json.Marshal(snap)
	_ = fake.Set(context.Background(), "quote:AAPL", data, 0)

	provider := &mockQuoteProvider{err: errors.New("upstream down")}
	svc := NewQuoteService(testTracer, provider, fake, 0, time.Millisecond)

	quotes, usedFallback := svc.Quotes(context.Background(), []string{"AAPL", "MSFT"})
	if !usedFallback {
		t.Fatal("expected degraded result")
	}
	if len(quotes) != 1 || quotes[0].Symbol != "AAPL" {
		t.Fatalf("cached entry should survive the outage, got %+v", quotes)
	}
}

func TestWrapRedisNilPointerIsNilInterface(t *testing.T) {
	t.Parallel()

	if got := WrapRedis(nil); got != nil {
		t.Fatalf("nil client must wrap to a nil interface, got %#v", got)
	}
	if got := WrapRedis(redis.NewClient(&redis.Options{Addr: "localhost:6379"})); got == nil {
		t.Fatal("live client must wrap to a usable interface")
	}
}

func TestQuoteService_CachelessWiringServesLive(t *testing.T) {
	t.Parallel()

	// Same construction the binaries use when Redis is unreachable and the
	// package-level client pointer stays nil.
	var down *redis.Client
	provider := &mockQuoteProvider{
		quotes: []domain.QuoteSnapshot{{Symbol: "AAPL", RegularMarketPrice: 187.5}},
	}
	svc := NewQuoteService(testTracer, provider, WrapRedis(down), 0, time.Millisecond)

	quotes, usedFallback := svc.Quotes(context.Background(), []string{"AAPL"})
	if usedFallback {
		t.Fatal("live fetch without a cache should not be degraded")
	}
	if len(quotes) != 1 || quotes[0].Symbol != "AAPL" {
		t.Fatalf("unexpected quotes: %+v", quotes)
	}
	if provider.calls != 1 {
		t.Fatalf("expected one provider call, got %d", provider.calls)
	}
}

type mockQuoteProvider struct {
	quotes      []domain.QuoteSnapshot
	err         error
	calls       int
	lastSymbols []string
}

func (m *mockQuoteProvider) FetchQuotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, error) {
	m.calls++
	m.lastSymbols = append([]string(nil), symbols...)
	if m.err != nil {
		return nil, m.err
	}
	return m.quotes, nil
}

type fakeRedis struct {
	data   map[string][]byte
	setErr error
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string][]byte)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = append([]byte(nil), v...)
	case string:
		f.data[key] = []byte(v)
	default:
		bytes, _ := json.Marshal(v)
		f.data[key] = bytes
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(string(v), nil)
	}
	return redis.NewStringResult("", redis.Nil)
}
