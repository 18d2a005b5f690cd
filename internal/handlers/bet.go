package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yehagerbet-backend/internal/models"
	"yehagerbet-backend/internal/services"
)

type BetHandler struct {
	svc *services.MongoService
}

func NewBetHandler(svc *services.MongoService) *BetHandler {
	return &BetHandler{svc: svc}
}

func (h *BetHandler) ListBets(c *gin.Context) {
	if !h.svc.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	items, err := h.svc.ListBets(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list bets",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *BetHandler) PlaceBet(c *gin.Context) {
	if !h.svc.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	var req models.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	result, err := h.svc.PlaceBet(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUserID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, services.ErrNoSelections):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No selections provided"})
		case errors.Is(err, services.ErrInvalidOdds):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid odds in selection"})
		case errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to place bet",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bet_id":           result.BetID,
		"potential_return": result.PotentialReturn,
		"balance":          result.Balance,
	})
}
