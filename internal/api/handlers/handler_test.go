package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/evrent/evrent/pkg/ws"
)

// 校验失败的请求在触达存储层之前就应被拒绝，
// 所以这里的 Handler 不需要任何仓库
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	h := NewHandler(logger, nil, nil, nil, nil, nil, nil, ws.NewHub(logger))

	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func assertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int) {
	t.Helper()

	if w.Code != wantStatus {
		t.Fatalf("expected status %d, got %d (body %s)", wantStatus, w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected error key in response, got %s", w.Body.String())
	}
}

func TestHome(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "running") {
		t.Fatalf("expected liveness string, got %q", w.Body.String())
	}
}

func TestAvailableCarsMissingCoordinates(t *testing.T) {
	r := newTestRouter()

	for _, target := range []string{
		"/available_cars",
		"/available_cars?lat=40.1",
		"/available_cars?lon=116.3",
	} {
		w := doRequest(t, r, http.MethodGet, target, "")
		assertErrorResponse(t, w, http.StatusBadRequest)
	}
}

func TestCityDistanceMissingParams(t *testing.T) {
	r := newTestRouter()

	for _, target := range []string{
		"/available_cars/city_distance",
		"/available_cars/city_distance?city=Berlin",
		"/available_cars/city_distance?city=Berlin&lat=40.1",
		"/available_cars/city_distance?lat=40.1&lon=116.3",
	} {
		w := doRequest(t, r, http.MethodGet, target, "")
		assertErrorResponse(t, w, http.StatusBadRequest)
	}
}

func TestPriceDistanceMissingParams(t *testing.T) {
	r := newTestRouter()

	for _, target := range []string{
		"/available_cars/price_distance",
		"/available_cars/price_distance?min=10&lat=1&lon=2",
		"/available_cars/price_distance?min=10&max=50",
		"/available_cars/price_distance?min=abc&max=50&lat=1&lon=2",
	} {
		w := doRequest(t, r, http.MethodGet, target, "")
		assertErrorResponse(t, w, http.StatusBadRequest)
	}
}

func TestCapacityDistanceMissingParams(t *testing.T) {
	r := newTestRouter()

	for _, target := range []string{
		"/available_cars/capacity_distance",
		"/available_cars/capacity_distance?capacity=4",
		"/available_cars/capacity_distance?capacity=four&lat=1&lon=2",
	} {
		w := doRequest(t, r, http.MethodGet, target, "")
		assertErrorResponse(t, w, http.StatusBadRequest)
	}
}

func TestInvalidUserID(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/user/abc", "")
	assertErrorResponse(t, w, http.StatusBadRequest)
}

func TestReserveMalformedBody(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodPost, "/reserve", "{not json")
	assertErrorResponse(t, w, http.StatusBadRequest)
}

func TestReserveMissingFields(t *testing.T) {
	r := newTestRouter()

	body := `{"user_id": 1, "car_id": 2, "start_time": "2026-09-01T10:00:00Z"}`
	w := doRequest(t, r, http.MethodPost, "/reserve", body)
	assertErrorResponse(t, w, http.StatusBadRequest)

	if !strings.Contains(w.Body.String(), "end_time") {
		t.Fatalf("expected missing field name in error, got %s", w.Body.String())
	}
}

func TestReserveEndBeforeStart(t *testing.T) {
	r := newTestRouter()

	body := `{
		"user_id": 1, "car_id": 2,
		"start_time": "2026-09-02T10:00:00Z", "end_time": "2026-09-01T10:00:00Z",
		"pickup_location_id": 3, "dropoff_location_id": 4,
		"method_id": 5, "trip_cost": 99.9, "trip_distance_km": 42
	}`
	w := doRequest(t, r, http.MethodPost, "/reserve", body)
	assertErrorResponse(t, w, http.StatusBadRequest)
}
