package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/evrent/evrent/internal/models"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if p, ok := dest[0].(*int64); ok {
		*p = r.id
	}
	return nil
}

type fakeTx struct {
	pgx.Tx

	failPayment bool

	reservationInserted bool
	paymentInserted     bool
	paymentArgs         []any
	committed           bool
	rolledBack          bool
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "INSERT INTO reservations"):
		t.reservationInserted = true
		return fakeRow{id: 101}
	case strings.Contains(sql, "INSERT INTO reservation_payments"):
		if t.failPayment {
			return fakeRow{err: errors.New("violates foreign key constraint")}
		}
		t.paymentInserted = true
		t.paymentArgs = args
		return fakeRow{id: 202}
	default:
		return fakeRow{err: errors.New("unexpected query: " + sql)}
	}
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.rolledBack {
		return pgx.ErrTxClosed
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

func newTxRepo(tx *fakeTx) *ReservationRepository {
	return &ReservationRepository{
		begin: func(ctx context.Context) (pgx.Tx, error) { return tx, nil },
	}
}

func TestCreateWithPaymentCommitsBothInserts(t *testing.T) {
	tx := &fakeTx{}
	repo := newTxRepo(tx)

	res := &models.Reservation{Ref: "ref-1", UserID: 1, CarID: 2}
	payment := &models.ReservationPayment{MethodID: 5, TripCost: 120.50}

	if err := repo.CreateWithPayment(context.Background(), res, payment); err != nil {
		t.Fatalf("CreateWithPayment: %v", err)
	}
	if !tx.reservationInserted || !tx.paymentInserted {
		t.Fatalf("expected both inserts, got reservation=%v payment=%v",
			tx.reservationInserted, tx.paymentInserted)
	}
	if !tx.committed {
		t.Fatalf("expected transaction committed")
	}
	if res.ID != 101 {
		t.Fatalf("expected reservation id from insert, got %d", res.ID)
	}
	if payment.ReservationID != res.ID {
		t.Fatalf("expected payment to reference reservation %d, got %d", res.ID, payment.ReservationID)
	}
	if len(tx.paymentArgs) == 0 || tx.paymentArgs[0] != res.ID {
		t.Fatalf("expected payment insert to use generated reservation id, got args %v", tx.paymentArgs)
	}
	if payment.ID != 202 {
		t.Fatalf("expected payment id from insert, got %d", payment.ID)
	}
}

func TestCreateWithPaymentRollsBackOnPaymentFailure(t *testing.T) {
	tx := &fakeTx{failPayment: true}
	repo := newTxRepo(tx)

	res := &models.Reservation{Ref: "ref-2", UserID: 1, CarID: 2}
	payment := &models.ReservationPayment{MethodID: 999, TripCost: 50}

	err := repo.CreateWithPayment(context.Background(), res, payment)
	if err == nil {
		t.Fatalf("expected error when payment insert fails")
	}
	if tx.committed {
		t.Fatalf("expected no commit after payment failure")
	}
	if !tx.rolledBack {
		t.Fatalf("expected transaction rolled back")
	}
	if tx.paymentInserted {
		t.Fatalf("expected no payment row recorded")
	}
}

func TestCreateWithPaymentBeginFailure(t *testing.T) {
	repo := &ReservationRepository{
		begin: func(ctx context.Context) (pgx.Tx, error) {
			return nil, errors.New("pool exhausted")
		},
	}

	res := &models.Reservation{Ref: "ref-3"}
	payment := &models.ReservationPayment{MethodID: 1, TripCost: 10}

	if err := repo.CreateWithPayment(context.Background(), res, payment); err == nil {
		t.Fatalf("expected error when begin fails")
	}
}
