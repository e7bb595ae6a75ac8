package models

import "time"

// Reservation 预订记录
// 费用记录在关联的 ReservationPayment 上，行程距离属于预订本身
type Reservation struct {
	ID                int64     `json:"id" db:"id"`
	Ref               string    `json:"ref" db:"ref"`
	UserID            int64     `json:"user_id" db:"user_id"`
	CarID             int64     `json:"car_id" db:"car_id"`
	PickupLocationID  int64     `json:"pickup_location_id" db:"pickup_location_id"`
	DropoffLocationID int64     `json:"dropoff_location_id" db:"dropoff_location_id"`
	StartTime         time.Time `json:"start_time" db:"start_time"`
	EndTime           time.Time `json:"end_time" db:"end_time"`
	TripDistanceKm    float64   `json:"trip_distance_km" db:"trip_distance_km"`
}

// ReservationPayment 预订支付记录，与 Reservation 一一对应
type ReservationPayment struct {
	ID            int64   `json:"id" db:"id"`
	ReservationID int64   `json:"reservation_id" db:"reservation_id"`
	MethodID      int64   `json:"method_id" db:"method_id"`
	TripCost      float64 `json:"trip_cost" db:"trip_cost"`
}

// ReservationDetail 预订详情视图（关联车辆、网点、支付方式）
type ReservationDetail struct {
	ID              int64     `json:"id" db:"id"`
	Ref             string    `json:"ref" db:"ref"`
	StartTime       time.Time `json:"start_time" db:"start_time"`
	EndTime         time.Time `json:"end_time" db:"end_time"`
	TripDistanceKm  float64   `json:"trip_distance_km" db:"trip_distance_km"`
	TripCost        float64   `json:"trip_cost" db:"trip_cost"`
	CarMake         string    `json:"car_make" db:"car_make"`
	CarModel        string    `json:"car_model" db:"car_model"`
	PickupLocation  string    `json:"pickup_location" db:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location" db:"dropoff_location"`
	MethodID        int64     `json:"method_id" db:"method_id"`
	CardType        string    `json:"card_type" db:"card_type"`
	CardNumber      string    `json:"card_number" db:"card_number"`
}
