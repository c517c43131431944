package handler

import (
	"net/http"
	"strings"

	"stockdeck/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type stocksRequest struct {
	Symbols []string `json:"symbols"`
	Action  string   `json:"action"`
}

// PostStocks godoc
// @Summary      Batch stock lookup
// @Description  Returns quotes for the given symbols, or news for the first symbol, depending on action
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body  stocksRequest  true  "Symbols and action (quotes or news)"
// @Success      200  {object}  interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/stocks [post]
func (h *Handler) PostStocks(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.post-stocks")
	defer span.End()

	var req stocksRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symbols array"})
		return
	}

	var symbols []string
	for _, s := range req.Symbols {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symbols array"})
		return
	}
	span.SetAttributes(attribute.StringSlice("symbols", symbols), attribute.String("action", req.Action))

	switch req.Action {
	case "quotes":
		quotes, usedFallback := h.quotes.Quotes(ctx, symbols)
		markFallback(c, usedFallback)
		if quotes == nil {
			quotes = []domain.QuoteSnapshot{}
		}
		c.JSON(http.StatusOK, quotes)
	case "news":
		// News lookups are per symbol; the batch form serves the first one.
		items, usedFallback := h.news.Headlines(ctx, symbols[0], 20)
		markFallback(c, usedFallback)
		c.JSON(http.StatusOK, items)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}
