package api

import (
	"log/slog"
	"net/http"

	"github.com/amitbasuri/numstats-go/internal/models"
	"github.com/amitbasuri/numstats-go/internal/statistics"
	"github.com/gin-gonic/gin"
)

// ComputeStatistic handles GET /<operation>?nums=1,2,3
// Parses the nums query parameter and returns the statistic computed by calc
func (h *Handler) ComputeStatistic(calc statistics.Calculator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only the first value counts when nums is repeated
		raw := c.Query(statistics.NumsParam)

		nums, err := h.parser.Parse(raw)
		if err != nil {
			writeError(c, err)
			return
		}

		result := calc.Compute(nums)

		slog.Debug("Statistic computed",
			"operation", result.Operation,
			"count", len(nums),
			"value", result.Value,
		)

		c.JSON(http.StatusOK, models.StatisticResponse{
			Response: result,
		})
	}
}
