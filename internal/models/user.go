package models

import "time"

// User 用户信息
type User struct {
	ID               int64     `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email"`
	Phone            string    `json:"phone" db:"phone"`
	LicenseNumber    string    `json:"license_number" db:"license_number"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
}

// PaymentMethod 支付方式
type PaymentMethod struct {
	ID         int64  `json:"id" db:"id"`
	UserID     int64  `json:"user_id" db:"user_id"`
	CardNumber string `json:"card_number" db:"card_number"`
	CardType   string `json:"card_type" db:"card_type"`
}
