package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/evrent/evrent/internal/models"
)

// CarFilter 可租车辆的可选过滤条件
// 基础条件 is_available = TRUE 始终生效，每个字段为 nil 表示不过滤
type CarFilter struct {
	City        *string
	MinPrice    *float64
	MaxPrice    *float64
	MinCapacity *int
}

// CarRepository 车辆数据仓库
type CarRepository struct {
	db *DB
}

// NewCarRepository 创建车辆仓库
func NewCarRepository(db *DB) *CarRepository {
	return &CarRepository{db: db}
}

// ListAvailable 查询可租车辆（车辆关联所在网点），按过滤条件筛选
// 不做排序，距离排序由查询服务负责；结果顺序即存储顺序
func (r *CarRepository) ListAvailable(ctx context.Context, filter CarFilter) ([]*models.AvailableCar, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT c.id, c.make, c.model, c.capacity, c.price_rate, c.photo_url,
			l.name AS location_name, l.city_name, l.latitude, l.longitude
		FROM cars c
		JOIN locations l ON c.current_location_id = l.id
		WHERE c.is_available = TRUE
	`)

	var args []interface{}
	if filter.City != nil {
		args = append(args, *filter.City)
		fmt.Fprintf(&sb, " AND l.city_name = $%d", len(args))
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil {
		args = append(args, *filter.MinPrice, *filter.MaxPrice)
		fmt.Fprintf(&sb, " AND c.price_rate BETWEEN $%d AND $%d", len(args)-1, len(args))
	}
	if filter.MinCapacity != nil {
		args = append(args, *filter.MinCapacity)
		fmt.Fprintf(&sb, " AND c.capacity >= $%d", len(args))
	}

	rows, err := r.db.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list available cars: %w", err)
	}
	defer rows.Close()

	cars := make([]*models.AvailableCar, 0)
	for rows.Next() {
		car := &models.AvailableCar{}
		err := rows.Scan(
			&car.ID,
			&car.Make,
			&car.Model,
			&car.Capacity,
			&car.PriceRate,
			&car.PhotoURL,
			&car.LocationName,
			&car.CityName,
			&car.Latitude,
			&car.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("scan available car: %w", err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate available cars: %w", err)
	}

	return cars, nil
}
