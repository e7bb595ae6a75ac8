package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListStations 获取充电站列表（关联所在网点）
func (h *Handler) ListStations(c *gin.Context) {
	stations, err := h.stationRepo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list stations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stations})
}
