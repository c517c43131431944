package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRecommendations godoc
// @Summary      Get stock recommendations
// @Description  Returns the current AI-generated stock picks, or the curated fallback set when generation is unavailable
// @Tags         recommendations
// @Produce      json
// @Success      200  {array}  domain.Recommendation
// @Header       200  {string}  X-Fallback-Data  "true when the payload is fallback data"
// @Router       /api/recommendations [get]
func (h *Handler) GetRecommendations(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-recommendations")
	defer span.End()

	recs, usedFallback := h.recs.Recommendations(ctx)
	markFallback(c, usedFallback)
	c.JSON(http.StatusOK, recs)
}
