package request

// TimeLayout is the wire format for booking instants. Times are local to the
// salon and carry no zone.
const TimeLayout = "2006-01-02T15:04:05"

// DateLayout is the wire format for calendar-day filters.
const DateLayout = "2006-01-02"

type CreateBooking struct {
	SalonID       string   `json:"salon_id" validate:"required"`
	ServiceIDs    []string `json:"service_ids" validate:"required,min=1,unique"`
	StartTime     string   `json:"start_time" validate:"required"`
	PaymentMethod string   `json:"payment_method"`
	// PaymentStatus lets a caller seed the payment state instead of the
	// default PENDING. Deliberately kept configurable.
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=PENDING PAID FAILED"`
}

// Customer is the identity of the requesting principal, supplied by the user
// service and trusted as given.
type Customer struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateBookingStatus struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRM CANCELLED"`
}

type PaymentOutcome struct {
	BookingID string `json:"booking_id" validate:"required"`
	Outcome   string `json:"outcome" validate:"required,oneof=PAID FAILED"`
}

// CreatePaymentOrder is published for the payment service after a booking is
// stored. Fire and forget; the outcome comes back through PaymentOutcome.
type CreatePaymentOrder struct {
	BookingID     string `json:"booking_id" validate:"required"`
	SalonID       string `json:"salon_id" validate:"required"`
	CustomerID    string `json:"customer_id" validate:"required"`
	CustomerEmail string `json:"customer_email"`
	Amount        int64  `json:"amount" validate:"required"`
}

// BookingNotification is the fact handed to the notification service on every
// status transition.
type BookingNotification struct {
	BookingID      string `json:"booking_id" validate:"required"`
	Status         string `json:"status" validate:"required"`
	PaymentStatus  string `json:"payment_status" validate:"required"`
	EmailRecipient string `json:"email_recipient"`
}
