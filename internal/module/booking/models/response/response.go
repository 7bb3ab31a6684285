package response

type UserServiceValidate struct {
	IsValid  bool   `json:"is_valid"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// SalonProfile is the immutable-per-request snapshot of a salon's operating
// hours served by the salon service. Open and close times are "15:04"
// time-of-day values; close before open means the window spans midnight.
type SalonProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type ServiceOffering struct {
	ID       string `json:"id"`
	SalonID  string `json:"salon_id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Price    int64  `json:"price"`
}

type Booking struct {
	ID            string   `json:"id"`
	SalonID       string   `json:"salon_id"`
	CustomerID    string   `json:"customer_id"`
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
	ServiceIDs    []string `json:"service_ids"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"payment_status"`
	PaymentMethod string   `json:"payment_method"`
	TotalPrice    int64    `json:"total_price"`
}

type SalonReport struct {
	SalonID               string `json:"salon_id"`
	SalonName             string `json:"salon_name"`
	TotalEarnings         int64  `json:"total_earnings"`
	TotalBookingCount     int    `json:"total_booking_count"`
	CancelledBookingCount int    `json:"cancelled_booking_count"`
	TotalRefund           int64  `json:"total_refund"`
}
