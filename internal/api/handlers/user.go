package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// GetUser 获取用户信息
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("Failed to get user", zap.Error(err), zap.Int64("user_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// ListPaymentMethods 获取用户的支付方式
func (h *Handler) ListPaymentMethods(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	methods, err := h.userRepo.ListPaymentMethods(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to list payment methods", zap.Error(err), zap.Int64("user_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payment methods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": methods})
}

// ListReservations 获取用户的历史预订，按开始时间倒序
func (h *Handler) ListReservations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reservations, err := h.resRepo.ListByUserID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to list reservations", zap.Error(err), zap.Int64("user_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reservations})
}

// GetActiveReservation 获取用户进行中的预订
// 没有进行中的预订不是错误，返回 data: null
func (h *Handler) GetActiveReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reservation, err := h.resRepo.GetActiveByUserID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusOK, gin.H{"data": nil})
			return
		}
		h.logger.Error("Failed to get active reservation", zap.Error(err), zap.Int64("user_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get active reservation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reservation})
}
