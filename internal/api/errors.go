package api

import (
	"log/slog"

	"github.com/amitbasuri/numstats-go/internal/apperr"
	"github.com/amitbasuri/numstats-go/internal/models"
	"github.com/gin-gonic/gin"
)

// NotFound handles every request that matches no route
func (h *Handler) NotFound(c *gin.Context) {
	writeError(c, apperr.NotFound())
}

// writeError writes err as {"error":{"message","status"}} and aborts the chain
func writeError(c *gin.Context, err error) {
	reqErr := apperr.As(err)

	if reqErr.Status >= 500 {
		slog.Error("Request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
	} else {
		slog.Warn("Request rejected",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"kind", reqErr.Kind,
			"error", reqErr.Message,
		)
	}

	c.AbortWithStatusJSON(reqErr.Status, models.ErrorResponse{
		Error: models.ErrorBody{
			Message: reqErr.Message,
			Status:  reqErr.Status,
		},
	})
}

// recovery turns a panic in any handler into a 500 error response
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("Panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		writeError(c, apperr.Internal())
	})
}
