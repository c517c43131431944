package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetNews godoc
// @Summary      Get generated financial news
// @Description  Returns AI-generated market news, or symbol-specific news when symbol is set
// @Tags         news
// @Produce      json
// @Param        market  query  string  false  "Market region (global, india)"  default(global)
// @Param        symbol  query  string  false  "Stock symbol for symbol-specific news"
// @Param        count   query  int     false  "Number of items"  default(20)
// @Success      200  {array}  domain.NewsItem
// @Header       200  {string}  X-Fallback-Data  "true when the payload is fallback data"
// @Router       /api/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-news")
	defer span.End()

	market := c.DefaultQuery("market", "global")
	count := parseCount(c.Query("count"), 20)
	symbol := strings.TrimSpace(c.Query("symbol"))

	if symbol != "" {
		symbol = strings.ToUpper(symbol)
		span.SetAttributes(attribute.String("symbol", symbol))
		items, usedFallback := h.news.StockNews(ctx, symbol, count)
		markFallback(c, usedFallback)
		c.JSON(http.StatusOK, items)
		return
	}

	span.SetAttributes(attribute.String("market", market))
	items, usedFallback := h.news.MarketNews(ctx, market, count)
	markFallback(c, usedFallback)
	c.JSON(http.StatusOK, items)
}

// GetStockNews godoc
// @Summary      Get provider news for a symbol
// @Description  Returns real news headlines for a stock, padded with fallback items when the provider returns fewer than requested
// @Tags         news
// @Produce      json
// @Param        symbol  query  string  true   "Stock symbol (e.g., AAPL, TCS.NS)"
// @Param        count   query  int     false  "Number of items"  default(10)
// @Success      200  {array}   domain.NewsItem
// @Failure      400  {object}  map[string]string
// @Router       /api/stockNews [get]
func (h *Handler) GetStockNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-stock-news")
	defer span.End()

	symbol := strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symbol provided"})
		return
	}
	span.SetAttributes(attribute.String("symbol", symbol))

	count := parseCount(c.Query("count"), 10)

	items, usedFallback := h.news.Headlines(ctx, symbol, count)
	markFallback(c, usedFallback)
	c.JSON(http.StatusOK, items)
}

func parseCount(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > 50 {
		return fallback
	}
	return n
}
