package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/evrent/evrent/internal/geo"
	"github.com/evrent/evrent/internal/models"
	"github.com/evrent/evrent/internal/repository"
)

// AvailabilityService 可租车辆查询服务
// 负责把过滤结果按到用户坐标的距离升序排列
type AvailabilityService struct {
	logger  *zap.Logger
	carRepo *repository.CarRepository
}

// NewAvailabilityService 创建查询服务
func NewAvailabilityService(logger *zap.Logger, carRepo *repository.CarRepository) *AvailabilityService {
	return &AvailabilityService{
		logger:  logger,
		carRepo: carRepo,
	}
}

// Nearby 查询可租车辆并按距离升序返回
// 每次调用重新执行底层查询，结果不分页；距离相同时保持存储顺序
func (s *AvailabilityService) Nearby(ctx context.Context, filter repository.CarFilter, lat, lon float64) ([]*models.AvailableCar, error) {
	cars, err := s.carRepo.ListAvailable(ctx, filter)
	if err != nil {
		return nil, err
	}

	sortByDistance(cars, lat, lon)
	return cars, nil
}

// sortByDistance 计算每辆车到用户坐标的距离并稳定排序
// 使用与参考数据一致的平面近似公式，换公式会改变排序结果
func sortByDistance(cars []*models.AvailableCar, lat, lon float64) {
	for _, car := range cars {
		d := geo.Distance(lat, lon, car.Latitude, car.Longitude)
		car.DistanceKm = &d
	}

	sort.SliceStable(cars, func(i, j int) bool {
		return *cars[i].DistanceKm < *cars[j].DistanceKm
	})
}
