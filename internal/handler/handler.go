package handler

import (
	"context"

	"stockdeck/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// FallbackHeader marks responses whose payload is (partly) synthetic so the
// frontend can show its degraded-data notice.
const FallbackHeader = "X-Fallback-Data"

type QuoteSource interface {
	Quotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, bool)
}

type NewsSource interface {
	MarketNews(ctx context.Context, market string, count int) ([]domain.NewsItem, bool)
	StockNews(ctx context.Context, symbol string, count int) ([]domain.NewsItem, bool)
	Headlines(ctx context.Context, symbol string, count int) ([]domain.NewsItem, bool)
}

type RecommendationSource interface {
	Recommendations(ctx context.Context) ([]domain.Recommendation, bool)
}

type Handler struct {
	tracer trace.Tracer
	quotes QuoteSource
	news   NewsSource
	recs   RecommendationSource
}

func New(tracer trace.Tracer, quotes QuoteSource, news NewsSource, recs RecommendationSource) *Handler {
	return &Handler{
		tracer: tracer,
		quotes: quotes,
		news:   news,
		recs:   recs,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/news", h.GetNews)
	r.GET("/api/stockQuotes", h.GetStockQuotes)
	r.GET("/api/stockNews", h.GetStockNews)
	r.POST("/api/stocks", h.PostStocks)
	r.GET("/api/recommendations", h.GetRecommendations)
}

func markFallback(c *gin.Context, usedFallback bool) {
	if usedFallback {
		c.Header(FallbackHeader, "true")
	}
}
