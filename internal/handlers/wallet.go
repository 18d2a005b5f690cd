package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yehagerbet-backend/internal/models"
	"yehagerbet-backend/internal/services"
)

type WalletHandler struct {
	svc *services.MongoService
}

func NewWalletHandler(svc *services.MongoService) *WalletHandler {
	return &WalletHandler{svc: svc}
}

func (h *WalletHandler) TopUp(c *gin.Context) {
	if !h.svc.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	var req models.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	balance, err := h.svc.TopUp(c.Request.Context(), req.UserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUserID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to top up",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

func (h *WalletHandler) ListTransactions(c *gin.Context) {
	if !h.svc.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	userID := c.Query("user_id")

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	items, err := h.svc.ListTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list transactions",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
