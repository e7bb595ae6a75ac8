package models

// AvailableCar 可租车辆视图（车辆 + 所在网点）
// DistanceKm 由查询服务按用户坐标计算，仅带坐标的接口会填充
type AvailableCar struct {
	ID           int64    `json:"id" db:"id"`
	Make         string   `json:"make" db:"make"`
	Model        string   `json:"model" db:"model"`
	Capacity     int      `json:"capacity" db:"capacity"`
	PriceRate    float64  `json:"price_rate" db:"price_rate"`
	PhotoURL     string   `json:"photo_url" db:"photo_url"`
	LocationName string   `json:"location_name" db:"location_name"`
	CityName     string   `json:"city_name" db:"city_name"`
	Latitude     float64  `json:"latitude" db:"latitude"`
	Longitude    float64  `json:"longitude" db:"longitude"`
	DistanceKm   *float64 `json:"distance_km,omitempty"`
}
