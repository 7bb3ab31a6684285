package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirm   BookingStatus = "CONFIRM"
	BookingCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Booking rows are never deleted; cancellation is a status value so that
// reporting and slot checks keep seeing the full history.
type Booking struct {
	ID            uuid.UUID      `db:"id"`
	SalonID       string         `db:"salon_id"`
	CustomerID    string         `db:"customer_id"`
	CustomerName  string         `db:"customer_name"`
	CustomerEmail string         `db:"customer_email"`
	ServiceIDs    pq.StringArray `db:"service_ids"`
	StartTime     time.Time      `db:"start_time"`
	EndTime       time.Time      `db:"end_time"`
	Status        BookingStatus  `db:"status"`
	PaymentStatus PaymentStatus  `db:"payment_status"`
	PaymentMethod string         `db:"payment_method"`
	TotalPrice    int64          `db:"total_price"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}

// StatusForOutcome maps a terminal payment outcome onto the booking status it
// implies. Both fields always move together in a single write.
func StatusForOutcome(outcome PaymentStatus) (BookingStatus, bool) {
	switch outcome {
	case PaymentPaid:
		return BookingConfirm, true
	case PaymentFailed:
		return BookingCancelled, true
	default:
		return "", false
	}
}
