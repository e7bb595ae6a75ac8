package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/evrent/evrent/internal/service"
)

// CreateReservation 创建预订
// 校验通过后在一个事务内写入预订与支付记录；
// 底层错误只记日志，客户端拿到的是通用错误信息
func (h *Handler) CreateReservation(c *gin.Context) {
	var req service.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.bookingService.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create reservation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Reservation created successfully",
		"reservation_id": reservation.ID,
		"ref":            reservation.Ref,
	})
}
