package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	pool *pgxpool.Pool
}

// NewHealthHandler creates a new HealthHandler instance. pool may be nil, in
// which case readiness falls back to a liveness answer.
func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  HealthResponse   "Returns health status"
// @Router       /health [get]
// @exclude
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Ready godoc
// @Summary      Readiness check
// @Description  Checks if the server can reach its database
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  HealthResponse   "Database reachable"
// @Failure      503  {object}  HealthResponse   "Database unreachable"
// @Router       /ready [get]
// @exclude
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.pool != nil {
		if err := h.pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status: "database unreachable",
			})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}
