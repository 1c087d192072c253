package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/internal/dto"
)

const version = "1.0.0"

// HealthHandler godoc
// @Summary Service health
// @Description Check database and AI provider connectivity
// @Tags health
// @Produce json
// @Success 200 {object} dto.Response{data=dto.HealthResponse}
// @Failure 503 {object} dto.Response{data=dto.HealthResponse}
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	services := map[string]string{
		"database": "healthy",
		"gemini":   "healthy",
	}
	status := "healthy"

	sqlDB, err := ctrl.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		services["database"] = "unhealthy"
		status = "unhealthy"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	if err := ctrl.gemini.Ping(ctx); err != nil {
		services["gemini"] = "unhealthy"
		status = "unhealthy"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	respond(c, code, dto.HealthResponse{Status: status, Services: services, Version: version}, "")
}
