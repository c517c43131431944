package job

import (
	"context"
	"sync"
	"testing"
	"time"

	"stockdeck/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

func TestNewQuotePollerInterval(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	poller := NewQuotePoller(tracer, &stubQuoter{}, []string{"AAPL"}, 2)
	if poller.pollInterval != 2*time.Second {
		t.Fatalf("expected 2s interval, got %v", poller.pollInterval)
	}
}

func TestNewQuotePollerDefaultsWatchlist(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	poller := NewQuotePoller(tracer, &stubQuoter{}, nil, 60)
	if len(poller.symbols) != len(domain.DefaultWatchSymbols) {
		t.Fatalf("expected default watchlist, got %v", poller.symbols)
	}
}

func TestQuotePollerStart(t *testing.T) {
	t.Parallel()

	tracer := trace.NewNoopTracerProvider().Tracer("test")
	stub := &stubQuoter{}
	poller := NewQuotePoller(tracer, stub, []string{"AAPL", "MSFT"}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	go poller.Start(ctx)

	eventually(t, func() bool { return stub.callCount() > 0 })
	cancel()

	if got := stub.last(); len(got) != 2 || got[0] != "AAPL" {
		t.Fatalf("unexpected refreshed symbols: %v", got)
	}
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(100 * time.Millisecond)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met")
}

type stubQuoter struct {
	mu          sync.Mutex
	calls       int
	lastSymbols []string
}

func (s *stubQuoter) Quotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastSymbols = append([]string(nil), symbols...)
	quotes := make([]domain.QuoteSnapshot, len(symbols))
	for i, sym := range symbols {
		quotes[i] = domain.QuoteSnapshot{Symbol: sym}
	}
	return quotes, false
}

func (s *stubQuoter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubQuoter) last() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lastSymbols...)
}
