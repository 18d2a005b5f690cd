package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yehagerbet-backend/internal/models"
	"yehagerbet-backend/internal/services"
)

type UserHandler struct {
	svc *services.MongoService
}

func NewUserHandler(svc *services.MongoService) *UserHandler {
	return &UserHandler{svc: svc}
}

func userResponse(u *models.User) gin.H {
	return gin.H{
		"user_id": u.ID.Hex(),
		"name":    u.Name,
		"phone":   u.Phone,
		"balance": u.Balance,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	if !h.svc.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrPhoneTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to register user",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}

func (h *UserHandler) Login(c *gin.Context) {
	if !h.svc.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.svc.FindUserByPhone(c.Request.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to log in",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	if !h.svc.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	user, err := h.svc.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUserID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to get user",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}
