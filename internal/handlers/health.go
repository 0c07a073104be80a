package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rfp-procurement-go/internal/model"
)

// HealthCheck reports service health including database connectivity
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := model.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Database:  "connected",
	}

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		response.Status = "unhealthy"
		response.Database = "disconnected"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
