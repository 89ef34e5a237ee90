package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/dns_lookup_api/pkg/resolver"
)

type HealthHandler struct {
	started time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

// HealthCheckHandler godoc
// @Summary      Health Check
// @Description  Reports API liveness, uptime and the available record types.
// @Tags         Monitoring
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "UP",
		"uptime":      time.Since(h.started).Round(time.Second).String(),
		"recordTypes": resolver.RecordTypes(),
	})
}
