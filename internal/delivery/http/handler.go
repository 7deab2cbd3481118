package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nakadouzonokouji/ai-cleaning-advisor-sub000/internal/domain"
)

// RecommenderService is the engine surface the HTTP layer depends on.
type RecommenderService interface {
	Recommend(ctx context.Context, dirtType, severity, location string) []domain.Product
	SearchByKeyword(keyword string, maxResults int) []domain.Product
	ClearCache(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	recommender RecommenderService
}

// NewHandler creates a new HTTP handler.
func NewHandler(recommender RecommenderService) *Handler {
	return &Handler{recommender: recommender}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cleaning-advisor",
		"version": "1.0.0",
	})
}

// Recommend handles recommendation requests. The engine itself never
// fails; the only rejected input is a missing dirt type, which the
// binding catches before the engine runs.
func (h *Handler) Recommend(c *gin.Context) {
	var req domain.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "dirtType is required",
		})
		return
	}

	products := h.recommender.Recommend(c.Request.Context(), req.DirtType, req.Severity, req.Location)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// Search handles keyword search requests. An empty result set is a
// legitimate answer here, unlike Recommend.
func (h *Handler) Search(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query parameter 'q' is required",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "query parameter 'limit' must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	products := h.recommender.SearchByKeyword(keyword, limit)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// ClearCache drops all memoized recommendation results.
func (h *Handler) ClearCache(c *gin.Context) {
	if err := h.recommender.ClearCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to clear cache",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "cache cleared",
	})
}
