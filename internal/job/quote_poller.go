package job

import (
	"context"
	"log"
	"time"

	"stockdeck/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// WatchlistQuoter is the slice of the quote service the poller needs.
type WatchlistQuoter interface {
	Quotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, bool)
}

// QuotePoller keeps the quote cache warm for the configured watchlist so
// interactive requests land on cached entries.
type QuotePoller struct {
	tracer       trace.Tracer
	quotes       WatchlistQuoter
	symbols      []string
	pollInterval time.Duration
}

func NewQuotePoller(tracer trace.Tracer, quotes WatchlistQuoter, symbols []string, pollIntervalSecs int) *QuotePoller {
	if len(symbols) == 0 {
		symbols = domain.DefaultWatchSymbols
	}
	return &QuotePoller{
		tracer:       tracer,
		quotes:       quotes,
		symbols:      symbols,
		pollInterval: time.Duration(pollIntervalSecs) * time.Second,
	}
}

// Start runs the warm loop until ctx is cancelled. The first refresh happens
// immediately.
func (p *QuotePoller) Start(ctx context.Context) {
	log.Printf("Quote poller starting for %d symbols...", len(p.symbols))

	p.refresh(ctx)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Quote poller stopped")
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *QuotePoller) refresh(ctx context.Context) {
	ctx, span := p.tracer.Start(ctx, "quote-poller.refresh")
	defer span.End()

	quotes, usedFallback := p.quotes.Quotes(ctx, p.symbols)
	if usedFallback {
		log.Printf("quote poller: degraded refresh, %d/%d symbols resolved", len(quotes), len(p.symbols))
		return
	}
	log.Printf("Refreshed quotes for %d symbols", len(quotes))
}
