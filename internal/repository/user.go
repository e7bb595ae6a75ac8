package repository

import (
	"context"
	"fmt"

	"github.com/evrent/evrent/internal/models"
)

// UserRepository 用户数据仓库
type UserRepository struct {
	db *DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 通过 ID 获取用户，不存在时返回包装后的 pgx.ErrNoRows
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, name, email, phone, license_number, registration_date
		FROM users WHERE id = $1
	`
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.LicenseNumber,
		&user.RegistrationDate,
	)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// ListPaymentMethods 获取用户的支付方式列表
func (r *UserRepository) ListPaymentMethods(ctx context.Context, userID int64) ([]*models.PaymentMethod, error) {
	query := `
		SELECT id, user_id, card_number, card_type
		FROM payment_methods WHERE user_id = $1
	`
	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	methods := make([]*models.PaymentMethod, 0)
	for rows.Next() {
		m := &models.PaymentMethod{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.CardNumber, &m.CardType); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment methods: %w", err)
	}

	return methods, nil
}
