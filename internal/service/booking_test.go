package service

import (
	"strings"
	"testing"
	"time"
)

func int64p(v int64) *int64       { return &v }
func float64p(v float64) *float64 { return &v }
func timep(v time.Time) *time.Time {
	return &v
}

func validRequest() *ReserveRequest {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	return &ReserveRequest{
		UserID:            int64p(1),
		CarID:             int64p(2),
		StartTime:         timep(start),
		EndTime:           timep(end),
		PickupLocationID:  int64p(3),
		DropoffLocationID: int64p(4),
		MethodID:          int64p(5),
		TripCost:          float64p(120.50),
		TripDistanceKm:    float64p(80),
	}
}

func TestReserveRequestValid(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestReserveRequestMissingFields(t *testing.T) {
	req := validRequest()
	req.MethodID = nil
	req.TripCost = nil

	missing := req.MissingFields()
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", missing)
	}

	err := req.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "method_id") || !strings.Contains(err.Error(), "trip_cost") {
		t.Fatalf("expected missing field names in error, got %q", err.Error())
	}
}

func TestReserveRequestEmpty(t *testing.T) {
	req := &ReserveRequest{}
	if got := len(req.MissingFields()); got != 9 {
		t.Fatalf("expected 9 missing fields, got %d", got)
	}
	if err := req.Validate(); err == nil {
		t.Fatalf("expected validation error for empty request")
	}
}

func TestReserveRequestTimeOrder(t *testing.T) {
	req := validRequest()
	req.EndTime = timep(req.StartTime.Add(-time.Hour))
	if err := req.Validate(); err == nil {
		t.Fatalf("expected error when end_time is before start_time")
	}

	req.EndTime = timep(*req.StartTime)
	if err := req.Validate(); err == nil {
		t.Fatalf("expected error when start_time equals end_time")
	}
}
