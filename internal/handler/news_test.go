package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockdeck/internal/domain"
)

func TestGetNewsMarketDefaults(t *testing.T) {
	news := &stubNews{market: []domain.NewsItem{{UUID: "a", Title: "Markets rally"}}}
	h := New(handlerTracer, &stubQuotes{}, news, &stubRecs{})
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if news.lastMarket != "global" || news.lastCount != 20 {
		t.Fatalf("unexpected defaults: market=%s count=%d", news.lastMarket, news.lastCount)
	}
	var body []domain.NewsItem
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(body) != 1 || body[0].Title != "Markets rally" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetNewsSymbolSelectsStockNews(t *testing.T) {
	news := &stubNews{stock: []domain.NewsItem{{UUID: "b", Title: "TCS wins deal"}}}
	h := New(handlerTracer, &stubQuotes{}, news, &stubRecs{})
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/news?symbol=tcs.ns&count=5&market=india", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if news.lastSymbol != "TCS.NS" || news.lastCount != 5 {
		t.Fatalf("unexpected args: symbol=%s count=%d", news.lastSymbol, news.lastCount)
	}
	if news.lastMarket != "" {
		t.Fatal("symbol request must not hit the market path")
	}
}

func TestGetNewsFallbackHeader(t *testing.T) {
	news := &stubNews{market: []domain.NewsItem{{UUID: "a", Title: "X"}}, usedFallback: true}
	h := New(handlerTracer, &stubQuotes{}, news, &stubRecs{})
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	router.ServeHTTP(w, req)

	if w.Header().Get(FallbackHeader) != "true" {
		t.Fatal("expected fallback header on degraded response")
	}
}

func TestGetStockNews(t *testing.T) {
	news := &stubNews{headlines: []domain.NewsItem{{UUID: "c", Title: "Apple ships results"}}}
	h := New(handlerTracer, &stubQuotes{}, news, &stubRecs{})
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stockNews?symbol=aapl", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if news.lastSymbol != "AAPL" || news.lastCount != 10 {
		t.Fatalf("unexpected args: symbol=%s count=%d", news.lastSymbol, news.lastCount)
	}
}

func TestGetStockNewsMissingSymbol(t *testing.T) {
	h := New(handlerTracer, &stubQuotes{}, &stubNews{}, &stubRecs{})
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stockNews", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestParseCountRejectsGarbage(t *testing.T) {
	cases := map[string]int{
		"":    10,
		"abc": 10,
		"-1":  10,
		"0":   10,
		"999": 10,
		"7":   7,
	}
	for raw, want := range cases {
		if got := parseCount(raw, 10); got != want {
			t.Fatalf("parseCount(%q) = %d, want %d", raw, got, want)
		}
	}
}
