package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	store  ports.AddressStore
	logger ports.LoggerPort
}

func NewHealthHandler(store ports.AddressStore, logger ports.LoggerPort) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// @Summary Health check
// @Description Reports whether the address store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} successResponse "Healthy"
// @Failure 503 {object} errorResponse "Store unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusServiceUnavailable, "Store unreachable")
		return
	}
	newSuccessResponse(c, http.StatusOK, "OK", nil)
}
