package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shoplens/backend/internal/domain"
	"github.com/shoplens/backend/internal/infrastructure/cache"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	commerce domain.Commerce
	cache    *cache.ResponseCache // nil disables response caching
	metrics  *Metrics
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(commerce domain.Commerce, respCache *cache.ResponseCache, metrics *Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		commerce: commerce,
		cache:    respCache,
		metrics:  metrics,
		logger:   logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shoplens-backend",
		"version": "0.1.0",
	})
}

// Commerce is the single action-dispatch endpoint. It accepts an ActionRequest,
// forwards it to the engine, and wraps the result in an {ok, data} / {ok, error}
// envelope like the original web bridge.
func (h *Handler) Commerce(c *gin.Context) {
	start := time.Now()
	defer func() { h.metrics.ObserveDuration(time.Since(start)) }()

	var req domain.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.IncAction(req.Action, "validation_error")
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	key, cacheable := "", false
	if h.cache != nil {
		if key, cacheable = cache.Key(req); cacheable {
			if body, hit := h.cache.Get(key); hit {
				h.metrics.IncCacheHit()
				h.metrics.IncAction(req.Action, "ok")
				c.Data(http.StatusOK, "application/json; charset=utf-8", body)
				return
			}
		}
	}

	data, err := h.commerce.Dispatch(c.Request.Context(), req)
	if err != nil {
		h.metrics.IncAction(req.Action, "error")
		c.JSON(statusForError(err), gin.H{"ok": false, "error": err.Error()})
		return
	}
	h.metrics.IncAction(req.Action, "ok")

	envelope := gin.H{"ok": true, "data": data}
	if cacheable {
		body, err := json.Marshal(envelope)
		if err != nil {
			h.logger.Error("failed to marshal response for caching", zap.Error(err))
			c.JSON(http.StatusOK, envelope)
			return
		}
		h.cache.Set(key, body)
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// statusForError maps engine errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
