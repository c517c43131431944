package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockdeck/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

var handlerTracer = trace.NewNoopTracerProvider().Tracer("handler-test")

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func TestGetStockQuotes(t *testing.T) {
	quotes := &stubQuotes{snapshots: []domain.QuoteSnapshot{
		{Symbol: "AAPL", RegularMarketPrice: 187.5},
	}}
	h := New(handlerTracer, quotes, &stubNews{}, &stubRecs{})
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stockQuotes?symbols=aapl,%20msft", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(quotes.lastSymbols) != 2 || quotes.lastSymbols[0] != "AAPL" || quotes.lastSymbols[1] != "MSFT" {
		t.Fatalf("symbols not normalized: %v", quotes.lastSymbols)
	}
	var body []domain.QuoteSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(body) != 1 || body[0].Symbol != "AAPL" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if w.Header().Get(FallbackHeader) != "" {
		t.Fatal("live response must not carry the fallback header")
	}
}

func TestGetStockQuotesMissingParam(t *testing.T) {
	h := New(handlerTracer, &stubQuotes{}, &stubNews{}, &stubRecs{})
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stockQuotes", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetStockQuotesFallbackHeader(t *testing.T) {
	h := New(handlerTracer, &stubQuotes{usedFallback: true}, &stubNews{}, &stubRecs{})
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stockQuotes?symbols=AAPL", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(FallbackHeader) != "true" {
		t.Fatal("expected fallback header on degraded response")
	}
	if w.Body.String() != "[]" {
		t.Fatalf("empty result must encode as [], got %q", w.Body.String())
	}
}

type stubQuotes struct {
	snapshots    []domain.QuoteSnapshot
	usedFallback bool
	lastSymbols  []string
}

func (s *stubQuotes) Quotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, bool) {
	s.lastSymbols = append([]string(nil), symbols...)
	return s.snapshots, s.usedFallback
}

type stubNews struct {
	market       []domain.NewsItem
	stock        []domain.NewsItem
	headlines    []domain.NewsItem
	usedFallback bool

	lastMarket string
	lastSymbol string
	lastCount  int
}

func (s *stubNews) MarketNews(ctx context.Context, market string, count int) ([]domain.NewsItem, bool) {
	s.lastMarket = market
	s.lastCount = count
	return s.market, s.usedFallback
}

func (s *stubNews) StockNews(ctx context.Context, symbol string, count int) ([]domain.NewsItem, bool) {
	s.lastSymbol = symbol
	s.lastCount = count
	return s.stock, s.usedFallback
}

func (s *stubNews) Headlines(ctx context.Context, symbol string, count int) ([]domain.NewsItem, bool) {
	s.lastSymbol = symbol
	s.lastCount = count
	return s.headlines, s.usedFallback
}

type stubRecs struct {
	recs         []domain.Recommendation
	usedFallback bool
}

func (s *stubRecs) Recommendations(ctx context.Context) ([]domain.Recommendation, bool) {
	return s.recs, s.usedFallback
}
