package handler

import (
	"net/http"
	"strings"

	"stockdeck/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetStockQuotes godoc
// @Summary      Get quote snapshots for symbols
// @Description  Returns one snapshot per resolvable symbol; symbols that fail upstream are omitted
// @Tags         quotes
// @Produce      json
// @Param        symbols  query  string  true  "Comma-separated symbols (e.g., AAPL,MSFT,RELIANCE.NS)"
// @Success      200  {array}   domain.QuoteSnapshot
// @Failure      400  {object}  map[string]string
// @Router       /api/stockQuotes [get]
func (h *Handler) GetStockQuotes(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-stock-quotes")
	defer span.End()

	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symbols provided"})
		return
	}
	span.SetAttributes(attribute.StringSlice("symbols", symbols))

	quotes, usedFallback := h.quotes.Quotes(ctx, symbols)
	markFallback(c, usedFallback)
	if quotes == nil {
		quotes = []domain.QuoteSnapshot{}
	}
	c.JSON(http.StatusOK, quotes)
}

func splitSymbols(raw string) []string {
	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
