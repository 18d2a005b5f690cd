package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yehagerbet-backend/internal/services"
)

type MatchHandler struct {
	svc *services.MongoService
}

func NewMatchHandler(svc *services.MongoService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

func (h *MatchHandler) ListMatches(c *gin.Context) {
	if !h.svc.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	items, err := h.svc.ListMatches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list matches",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
