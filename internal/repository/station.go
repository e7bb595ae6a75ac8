package repository

import (
	"context"
	"fmt"

	"github.com/evrent/evrent/internal/models"
)

// StationRepository 充电站数据仓库
type StationRepository struct {
	db *DB
}

// NewStationRepository 创建充电站仓库
func NewStationRepository(db *DB) *StationRepository {
	return &StationRepository{db: db}
}

// List 获取全部充电站（关联所在网点）
func (r *StationRepository) List(ctx context.Context) ([]*models.StationView, error) {
	query := `
		SELECT cs.id, l.name AS location_name, l.latitude, l.longitude,
			cs.num_ports, cs.power_output_kw, cs.status
		FROM charging_stations cs
		JOIN locations l ON cs.location_id = l.id
	`
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	defer rows.Close()

	stations := make([]*models.StationView, 0)
	for rows.Next() {
		s := &models.StationView{}
		err := rows.Scan(
			&s.ID,
			&s.LocationName,
			&s.Latitude,
			&s.Longitude,
			&s.NumPorts,
			&s.PowerOutputKw,
			&s.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stations: %w", err)
	}

	return stations, nil
}
