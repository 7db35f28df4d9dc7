package api

import (
	"net/http"

	resdto "restaurant-deals/internal/handler/dto/response"
	"restaurant-deals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	q queries.DealQueries
}

func NewHealthHandler(q queries.DealQueries) *HealthHandler {
	return &HealthHandler{q: q}
}

// @Summary Health check
// @Description Check if the service is healthy and which snapshot it serves
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Failure 503 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	info, err := h.q.SnapshotInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, resdto.HealthResponse{
			Status:  "unavailable",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:   "ok",
		Message:  "Service is healthy",
		Snapshot: resdto.FromSnapshotInfo(info),
	})
}
