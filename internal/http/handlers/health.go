package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizforge/quizforge-backend/internal/data/db"
)

type HealthHandler struct {
	pg *db.PostgresService
}

func NewHealthHandler(pg *db.PostgresService) *HealthHandler {
	return &HealthHandler{pg: pg}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "ok"
	if h.pg != nil {
		if err := h.pg.Ping(); err != nil {
			dbStatus = "unreachable"
		}
	}
	if dbStatus != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": dbStatus})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": dbStatus})
}
