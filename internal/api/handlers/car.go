package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/evrent/evrent/internal/repository"
)

// ListCars 获取全部可租车辆（不带坐标，不计算距离）
func (h *Handler) ListCars(c *gin.Context) {
	cars, err := h.carRepo.ListAvailable(c.Request.Context(), repository.CarFilter{})
	if err != nil {
		h.logger.Error("Failed to list cars", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cars"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cars})
}

// AvailableCars 获取全部可租车辆，按到用户坐标的距离升序
func (h *Handler) AvailableCars(c *gin.Context) {
	lat, lon, ok := coordParams(c)
	if !ok {
		return
	}

	cars, err := h.availabilityService.Nearby(c.Request.Context(), repository.CarFilter{}, lat, lon)
	if err != nil {
		h.logger.Error("Failed to list available cars", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list available cars"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cars})
}

// CarsByCityDistance 按城市过滤的可租车辆，距离升序
func (h *Handler) CarsByCityDistance(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}
	lat, lon, ok := coordParams(c)
	if !ok {
		return
	}

	filter := repository.CarFilter{City: &city}
	cars, err := h.availabilityService.Nearby(c.Request.Context(), filter, lat, lon)
	if err != nil {
		h.logger.Error("Failed to list cars by city", zap.Error(err), zap.String("city", city))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list available cars"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cars})
}

// CarsByPriceDistance 按价格区间过滤的可租车辆，距离升序
// 价格区间为闭区间 [min, max]
func (h *Handler) CarsByPriceDistance(c *gin.Context) {
	minStr := c.Query("min")
	maxStr := c.Query("max")
	if minStr == "" || maxStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	minPrice, errMin := strconv.ParseFloat(minStr, 64)
	maxPrice, errMax := strconv.ParseFloat(maxStr, 64)
	if errMin != nil || errMax != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min/max parameters"})
		return
	}

	lat, lon, ok := coordParams(c)
	if !ok {
		return
	}

	filter := repository.CarFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}
	cars, err := h.availabilityService.Nearby(c.Request.Context(), filter, lat, lon)
	if err != nil {
		h.logger.Error("Failed to list cars by price", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list available cars"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cars})
}

// CarsByCapacityDistance 按最小载客数过滤的可租车辆，距离升序
func (h *Handler) CarsByCapacityDistance(c *gin.Context) {
	capacityStr := c.Query("capacity")
	if capacityStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	capacity, err := strconv.Atoi(capacityStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid capacity parameter"})
		return
	}

	lat, lon, ok := coordParams(c)
	if !ok {
		return
	}

	filter := repository.CarFilter{MinCapacity: &capacity}
	cars, err := h.availabilityService.Nearby(c.Request.Context(), filter, lat, lon)
	if err != nil {
		h.logger.Error("Failed to list cars by capacity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list available cars"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cars})
}
