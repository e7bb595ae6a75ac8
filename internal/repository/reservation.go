package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evrent/evrent/internal/models"
)

// ReservationRepository 预订数据仓库
// 事务入口通过 begin 注入，写入路径可以在无数据库的情况下验证
type ReservationRepository struct {
	db    *DB
	begin func(ctx context.Context) (pgx.Tx, error)
}

// NewReservationRepository 创建预订仓库
func NewReservationRepository(db *DB) *ReservationRepository {
	return &ReservationRepository{db: db, begin: db.Pool.Begin}
}

// CreateWithPayment 在同一事务内写入预订及其支付记录
// 两条插入要么都提交要么都回滚，支付记录引用预订插入返回的 ID
func (r *ReservationRepository) CreateWithPayment(ctx context.Context, res *models.Reservation, payment *models.ReservationPayment) error {
	tx, err := r.begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reservation tx: %w", err)
	}
	defer tx.Rollback(ctx)

	insertReservation := `
		INSERT INTO reservations (
			ref, user_id, car_id, pickup_location_id, dropoff_location_id,
			start_time, end_time, trip_distance_km
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err = tx.QueryRow(ctx, insertReservation,
		res.Ref,
		res.UserID,
		res.CarID,
		res.PickupLocationID,
		res.DropoffLocationID,
		res.StartTime,
		res.EndTime,
		res.TripDistanceKm,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	insertPayment := `
		INSERT INTO reservation_payments (reservation_id, method_id, trip_cost)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	payment.ReservationID = res.ID
	err = tx.QueryRow(ctx, insertPayment,
		payment.ReservationID,
		payment.MethodID,
		payment.TripCost,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("insert reservation payment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reservation tx: %w", err)
	}
	return nil
}

// ListByUserID 获取用户的历史预订，按开始时间倒序
func (r *ReservationRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.ReservationDetail, error) {
	query := `
		SELECT r.id, r.ref, r.start_time, r.end_time, r.trip_distance_km, rp.trip_cost,
			c.make AS car_make, c.model AS car_model,
			pl.name AS pickup_location, dl.name AS dropoff_location,
			rp.method_id, pm.card_type, pm.card_number
		FROM reservations r
		JOIN cars c ON r.car_id = c.id
		JOIN locations pl ON r.pickup_location_id = pl.id
		JOIN locations dl ON r.dropoff_location_id = dl.id
		JOIN reservation_payments rp ON rp.reservation_id = r.id
		JOIN payment_methods pm ON rp.method_id = pm.id
		WHERE r.user_id = $1
		ORDER BY r.start_time DESC
	`
	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]*models.ReservationDetail, 0)
	for rows.Next() {
		d := &models.ReservationDetail{}
		err := rows.Scan(
			&d.ID,
			&d.Ref,
			&d.StartTime,
			&d.EndTime,
			&d.TripDistanceKm,
			&d.TripCost,
			&d.CarMake,
			&d.CarModel,
			&d.PickupLocation,
			&d.DropoffLocation,
			&d.MethodID,
			&d.CardType,
			&d.CardNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservations: %w", err)
	}

	return reservations, nil
}

// GetActiveByUserID 获取用户当前进行中的预订（当前时间落在起止时间内）
// 没有进行中的预订时返回包装后的 pgx.ErrNoRows
func (r *ReservationRepository) GetActiveByUserID(ctx context.Context, userID int64) (*models.ReservationDetail, error) {
	query := `
		SELECT r.id, r.ref, r.start_time, r.end_time, r.trip_distance_km, rp.trip_cost,
			c.make AS car_make, c.model AS car_model,
			pl.name AS pickup_location, dl.name AS dropoff_location,
			rp.method_id, pm.card_type, pm.card_number
		FROM reservations r
		JOIN cars c ON r.car_id = c.id
		JOIN locations pl ON r.pickup_location_id = pl.id
		JOIN locations dl ON r.dropoff_location_id = dl.id
		JOIN reservation_payments rp ON rp.reservation_id = r.id
		JOIN payment_methods pm ON rp.method_id = pm.id
		WHERE r.user_id = $1 AND NOW() BETWEEN r.start_time AND r.end_time
		LIMIT 1
	`
	d := &models.ReservationDetail{}
	err := r.db.Pool.QueryRow(ctx, query, userID).Scan(
		&d.ID,
		&d.Ref,
		&d.StartTime,
		&d.EndTime,
		&d.TripDistanceKm,
		&d.TripCost,
		&d.CarMake,
		&d.CarModel,
		&d.PickupLocation,
		&d.DropoffLocation,
		&d.MethodID,
		&d.CardType,
		&d.CardNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("get active reservation: %w", err)
	}
	return d, nil
}
