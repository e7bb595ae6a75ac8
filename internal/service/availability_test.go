package service

import (
	"testing"

	"github.com/evrent/evrent/internal/models"
)

func TestSortByDistanceAscending(t *testing.T) {
	cars := []*models.AvailableCar{
		{ID: 1, Latitude: 3, Longitude: 0},
		{ID: 2, Latitude: 1, Longitude: 0},
		{ID: 3, Latitude: 2, Longitude: 0},
	}

	sortByDistance(cars, 0, 0)

	for i, wantID := range []int64{2, 3, 1} {
		if cars[i].ID != wantID {
			t.Fatalf("position %d: expected car %d, got %d", i, wantID, cars[i].ID)
		}
	}

	for i := 1; i < len(cars); i++ {
		if *cars[i].DistanceKm < *cars[i-1].DistanceKm {
			t.Fatalf("expected non-decreasing distances, got %f after %f",
				*cars[i].DistanceKm, *cars[i-1].DistanceKm)
		}
	}
}

func TestSortByDistanceStableOnTies(t *testing.T) {
	cars := []*models.AvailableCar{
		{ID: 10, Latitude: 1, Longitude: 0},
		{ID: 11, Latitude: 1, Longitude: 0},
		{ID: 12, Latitude: 1, Longitude: 0},
	}

	sortByDistance(cars, 0, 0)

	for i, wantID := range []int64{10, 11, 12} {
		if cars[i].ID != wantID {
			t.Fatalf("position %d: expected storage order preserved (car %d), got %d", i, wantID, cars[i].ID)
		}
	}
}

func TestSortByDistanceSetsDistance(t *testing.T) {
	cars := []*models.AvailableCar{{ID: 1, Latitude: 1, Longitude: 0}}

	sortByDistance(cars, 0, 0)

	if cars[0].DistanceKm == nil {
		t.Fatalf("expected distance to be set")
	}
	if d := *cars[0].DistanceKm; d < 111.110 || d > 111.112 {
		t.Fatalf("expected ~111.111 km, got %f", d)
	}
}
