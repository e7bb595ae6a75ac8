package models

// StationView 充电站视图（关联所在网点）
type StationView struct {
	ID            int64   `json:"id" db:"id"`
	LocationName  string  `json:"location_name" db:"location_name"`
	Latitude      float64 `json:"latitude" db:"latitude"`
	Longitude     float64 `json:"longitude" db:"longitude"`
	NumPorts      int     `json:"num_ports" db:"num_ports"`
	PowerOutputKw int     `json:"power_output_kw" db:"power_output_kw"`
	Status        string  `json:"status" db:"status"`
}
