package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evrent/evrent/internal/models"
	"github.com/evrent/evrent/internal/repository"
	"github.com/evrent/evrent/internal/state"
	"github.com/evrent/evrent/pkg/ws"
)

// ReserveRequest 预订请求体
// 字段全部用指针区分"缺失"和"零值"，在边界做必填校验
type ReserveRequest struct {
	UserID            *int64     `json:"user_id"`
	CarID             *int64     `json:"car_id"`
	StartTime         *time.Time `json:"start_time"`
	EndTime           *time.Time `json:"end_time"`
	PickupLocationID  *int64     `json:"pickup_location_id"`
	DropoffLocationID *int64     `json:"dropoff_location_id"`
	MethodID          *int64     `json:"method_id"`
	TripCost          *float64   `json:"trip_cost"`
	TripDistanceKm    *float64   `json:"trip_distance_km"`
}

// MissingFields 返回缺失的必填字段名
func (r *ReserveRequest) MissingFields() []string {
	var missing []string
	if r.UserID == nil {
		missing = append(missing, "user_id")
	}
	if r.CarID == nil {
		missing = append(missing, "car_id")
	}
	if r.StartTime == nil {
		missing = append(missing, "start_time")
	}
	if r.EndTime == nil {
		missing = append(missing, "end_time")
	}
	if r.PickupLocationID == nil {
		missing = append(missing, "pickup_location_id")
	}
	if r.DropoffLocationID == nil {
		missing = append(missing, "dropoff_location_id")
	}
	if r.MethodID == nil {
		missing = append(missing, "method_id")
	}
	if r.TripCost == nil {
		missing = append(missing, "trip_cost")
	}
	if r.TripDistanceKm == nil {
		missing = append(missing, "trip_distance_km")
	}
	return missing
}

// Validate 校验必填字段和起止时间顺序
func (r *ReserveRequest) Validate() error {
	if missing := r.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("missing required reservation fields: %s", strings.Join(missing, ", "))
	}
	if !r.StartTime.Before(*r.EndTime) {
		return errors.New("start_time must be before end_time")
	}
	return nil
}

// BookingService 预订写入服务
type BookingService struct {
	logger  *zap.Logger
	resRepo *repository.ReservationRepository
	hub     *ws.Hub
}

// NewBookingService 创建预订服务
func NewBookingService(logger *zap.Logger, resRepo *repository.ReservationRepository, hub *ws.Hub) *BookingService {
	return &BookingService{
		logger:  logger,
		resRepo: resRepo,
		hub:     hub,
	}
}

// Create 写入预订及其支付记录
// 调用方负责先 Validate；两条插入在同一事务内提交，
// 失败时整体回滚，状态机停在 failed
func (s *BookingService) Create(ctx context.Context, req *ReserveRequest) (*models.Reservation, error) {
	booking := state.NewBooking()

	res := &models.Reservation{
		Ref:               uuid.NewString(),
		UserID:            *req.UserID,
		CarID:             *req.CarID,
		PickupLocationID:  *req.PickupLocationID,
		DropoffLocationID: *req.DropoffLocationID,
		StartTime:         *req.StartTime,
		EndTime:           *req.EndTime,
		TripDistanceKm:    *req.TripDistanceKm,
	}
	payment := &models.ReservationPayment{
		MethodID: *req.MethodID,
		TripCost: *req.TripCost,
	}

	if err := s.resRepo.CreateWithPayment(ctx, res, payment); err != nil {
		if ferr := booking.Fail(ctx); ferr != nil {
			s.logger.Warn("Failed to mark booking failed", zap.Error(ferr))
		}
		s.logger.Error("Reservation write failed",
			zap.Int64("user_id", res.UserID),
			zap.Int64("car_id", res.CarID),
			zap.String("status", booking.Current()),
			zap.Error(err))
		return nil, err
	}

	if err := booking.Commit(ctx); err != nil {
		s.logger.Warn("Failed to mark booking committed", zap.Error(err))
	}

	s.logger.Info("Reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.String("ref", res.Ref),
		zap.Int64("user_id", res.UserID),
		zap.Int64("car_id", res.CarID),
		zap.String("status", booking.Current()))

	if s.hub != nil {
		s.hub.BroadcastReservationCreated(res)
	}

	return res, nil
}
