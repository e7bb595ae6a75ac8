package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB 数据库连接池封装
type DB struct {
	Pool *pgxpool.Pool
}

// New 创建数据库连接
// 连接池大小有上限，并在连接级别设置 statement_timeout，
// 防止单个慢查询占满池子
func New(ctx context.Context, databaseURL string, maxConns, minConns int32, stmtTimeout time.Duration) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	// 连接池配置
	config.MaxConns = maxConns
	config.MinConns = minConns
	config.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(stmtTimeout.Milliseconds(), 10)

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// 测试连接
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close 关闭连接池
func (db *DB) Close() {
	db.Pool.Close()
}

// Migrate 执行数据库迁移
func (db *DB) Migrate(ctx context.Context) error {
	migrations := []string{
		migrationCreateLocations,
		migrationCreateCars,
		migrationCreateUsers,
		migrationCreatePaymentMethods,
		migrationCreateReservations,
		migrationCreateReservationPayments,
		migrationCreateChargingStations,
	}

	for _, m := range migrations {
		if _, err := db.Pool.Exec(ctx, m); err != nil {
			return fmt.Errorf("execute migration: %w", err)
		}
	}

	return nil
}

// 数据库迁移 SQL
const migrationCreateLocations = `
CREATE TABLE IF NOT EXISTS locations (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    city_name VARCHAR(255) NOT NULL,
    latitude DOUBLE PRECISION NOT NULL,
    longitude DOUBLE PRECISION NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_locations_city_name ON locations(city_name);
`

const migrationCreateCars = `
CREATE TABLE IF NOT EXISTS cars (
    id BIGSERIAL PRIMARY KEY,
    make VARCHAR(100) NOT NULL,
    model VARCHAR(100) NOT NULL,
    capacity INT NOT NULL,
    price_rate NUMERIC(10,2) NOT NULL,
    photo_url TEXT NOT NULL DEFAULT '',
    is_available BOOLEAN NOT NULL DEFAULT TRUE,
    current_location_id BIGINT NOT NULL REFERENCES locations(id)
);
CREATE INDEX IF NOT EXISTS idx_cars_is_available ON cars(is_available);
CREATE INDEX IF NOT EXISTS idx_cars_current_location_id ON cars(current_location_id);
`

const migrationCreateUsers = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    phone VARCHAR(50) NOT NULL DEFAULT '',
    license_number VARCHAR(50) NOT NULL DEFAULT '',
    registration_date TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
`

const migrationCreatePaymentMethods = `
CREATE TABLE IF NOT EXISTS payment_methods (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id),
    card_number VARCHAR(50) NOT NULL,
    card_type VARCHAR(50) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_payment_methods_user_id ON payment_methods(user_id);
`

const migrationCreateReservations = `
CREATE TABLE IF NOT EXISTS reservations (
    id BIGSERIAL PRIMARY KEY,
    ref VARCHAR(36) NOT NULL UNIQUE,
    user_id BIGINT NOT NULL REFERENCES users(id),
    car_id BIGINT NOT NULL REFERENCES cars(id),
    pickup_location_id BIGINT NOT NULL REFERENCES locations(id),
    dropoff_location_id BIGINT NOT NULL REFERENCES locations(id),
    start_time TIMESTAMP WITH TIME ZONE NOT NULL,
    end_time TIMESTAMP WITH TIME ZONE NOT NULL,
    trip_distance_km DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_reservations_user_id ON reservations(user_id);
CREATE INDEX IF NOT EXISTS idx_reservations_start_time ON reservations(start_time);
`

const migrationCreateReservationPayments = `
CREATE TABLE IF NOT EXISTS reservation_payments (
    id BIGSERIAL PRIMARY KEY,
    reservation_id BIGINT NOT NULL UNIQUE REFERENCES reservations(id),
    method_id BIGINT NOT NULL REFERENCES payment_methods(id),
    trip_cost NUMERIC(10,2) NOT NULL
);
`

const migrationCreateChargingStations = `
CREATE TABLE IF NOT EXISTS charging_stations (
    id BIGSERIAL PRIMARY KEY,
    location_id BIGINT NOT NULL REFERENCES locations(id),
    num_ports INT NOT NULL,
    power_output_kw INT NOT NULL,
    status VARCHAR(50) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_charging_stations_location_id ON charging_stations(location_id);
`
