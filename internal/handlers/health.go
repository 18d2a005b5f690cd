package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yehagerbet-backend/internal/config"
	"yehagerbet-backend/internal/services"
)

type HealthHandler struct {
	svc *services.MongoService
	cfg *config.Config
}

func NewHealthHandler(svc *services.MongoService, cfg *config.Config) *HealthHandler {
	return &HealthHandler{svc: svc, cfg: cfg}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "YehagerBet Betting API is running"})
}

// Test reports backend, database, and environment status. Driver errors
// while listing collections are reported as a truncated message, never
// propagated.
func (h *HealthHandler) Test(c *gin.Context) {
	database := "not available"
	if h.svc.Available() {
		database = "connected"
	}

	response := gin.H{
		"backend":       "running",
		"database":      database,
		"database_url":  setOrNot(h.cfg.DatabaseURL),
		"database_name": setOrNot(h.cfg.DatabaseName),
		"collections":   []string{},
	}

	if h.svc.Available() {
		names, err := h.svc.CollectionNames(c.Request.Context())
		if err != nil {
			response["database"] = "error: " + truncate(err.Error(), 80)
		} else {
			response["collections"] = names
		}
	}

	c.JSON(http.StatusOK, response)
}

func setOrNot(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
