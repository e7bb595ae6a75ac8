package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/evrent/evrent/internal/repository"
	"github.com/evrent/evrent/internal/service"
	"github.com/evrent/evrent/pkg/ws"
)

// Handler HTTP 处理器
type Handler struct {
	logger              *zap.Logger
	carRepo             *repository.CarRepository
	userRepo            *repository.UserRepository
	resRepo             *repository.ReservationRepository
	stationRepo         *repository.StationRepository
	availabilityService *service.AvailabilityService
	bookingService      *service.BookingService
	wsHub               *ws.Hub
	upgrader            websocket.Upgrader
}

// NewHandler 创建处理器
func NewHandler(
	logger *zap.Logger,
	carRepo *repository.CarRepository,
	userRepo *repository.UserRepository,
	resRepo *repository.ReservationRepository,
	stationRepo *repository.StationRepository,
	availabilityService *service.AvailabilityService,
	bookingService *service.BookingService,
	wsHub *ws.Hub,
) *Handler {
	return &Handler{
		logger:              logger,
		carRepo:             carRepo,
		userRepo:            userRepo,
		resRepo:             resRepo,
		stationRepo:         stationRepo,
		availabilityService: availabilityService,
		bookingService:      bookingService,
		wsHub:               wsHub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // 开发环境允许所有来源
			},
		},
	}
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// 存活探针
	r.GET("/", h.Home)

	// 车辆
	r.GET("/cars/list", h.ListCars)

	// 可租车辆（按距离排序）
	available := r.Group("/available_cars")
	{
		available.GET("", h.AvailableCars)
		available.GET("/city_distance", h.CarsByCityDistance)
		available.GET("/price_distance", h.CarsByPriceDistance)
		available.GET("/capacity_distance", h.CarsByCapacityDistance)
	}

	// 用户
	user := r.Group("/user")
	{
		user.GET("/:id", h.GetUser)
		user.GET("/:id/payment_methods", h.ListPaymentMethods)
		user.GET("/:id/reservations", h.ListReservations)
		user.GET("/:id/active_reservation", h.GetActiveReservation)
	}

	// 预订
	r.POST("/reserve", h.CreateReservation)

	// 充电站
	r.GET("/stations", h.ListStations)

	// WebSocket
	r.GET("/ws", h.HandleWebSocket)

	// 健康检查
	r.GET("/health", h.HealthCheck)
}

// Home 存活探针
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "evrent backend is running.")
}

// HandleWebSocket WebSocket 处理
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	client.Register()

	// 启动读写协程
	go client.ReadPump()
	go client.WritePump()
}

// HealthCheck 健康检查
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"ws_clients": h.wsHub.ClientCount(),
	})
}

// pathID 解析路径中的整数 ID，非法时返回 400
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// coordParams 解析必填的 lat/lon 参数
// 每个可租车辆接口都要求用户坐标，缺失或非法时返回 400
func coordParams(c *gin.Context) (lat, lon float64, ok bool) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return 0, 0, false
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lat/lon parameters"})
		return 0, 0, false
	}
	return lat, lon, true
}
