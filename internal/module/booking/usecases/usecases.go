package usecases

import (
	"context"
	"fmt"
	"time"

	"salon-booking-service/internal/module/booking/models/entity"
	"salon-booking-service/internal/module/booking/models/request"
	"salon-booking-service/internal/module/booking/models/response"
	"salon-booking-service/internal/module/booking/repositories"
	"salon-booking-service/internal/module/booking/slot"
	"salon-booking-service/internal/pkg/errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

const (
	TopicPaymentOrder        = "payment_order"
	TopicBookingNotification = "booking_notification"
)

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, payload *request.CreateBooking, customer request.Customer) (response.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (response.Booking, error)
	ListBookingsByCustomer(ctx context.Context, customerID string) ([]response.Booking, error)
	ListBookingsBySalon(ctx context.Context, salonID string) ([]response.Booking, error)
	ListBookingsBySalonAndDate(ctx context.Context, salonID string, date time.Time) ([]response.Booking, error)
	SetBookingStatus(ctx context.Context, bookingID string, status entity.BookingStatus) (response.Booking, error)
	BuildSalonReport(ctx context.Context, salonID string) (response.SalonReport, error)
	// reconciliation
	ApplyPaymentOutcome(ctx context.Context, payload *request.PaymentOutcome) error
	ReconcilePaymentOutcome(ctx context.Context, payload *request.PaymentOutcome) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

// CreateBooking aggregates price and duration over the requested service
// offerings, validates the resulting interval and persists the booking. The
// validate-then-insert sequence runs under a per-salon lock, so the set of
// non-cancelled bookings for a salon stays pairwise non-overlapping even
// under concurrent creation attempts.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, customer request.Customer) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "CreateBooking", "app.usecase")
	defer span.End()

	if len(payload.ServiceIDs) == 0 {
		return response.Booking{}, errors.BadRequest("at least one service is required")
	}

	startTime, err := time.Parse(request.TimeLayout, payload.StartTime)
	if err != nil {
		return response.Booking{}, errors.BadRequest("error parse start time")
	}

	salon, err := u.repo.GetSalonProfile(ctx, payload.SalonID)
	if err != nil {
		return response.Booking{}, err
	}

	offerings, err := u.repo.GetServiceOfferings(ctx, payload.ServiceIDs)
	if err != nil {
		return response.Booking{}, err
	}

	var totalDuration int
	var totalPrice int64
	serviceIDs := make([]string, 0, len(offerings))
	for _, offering := range offerings {
		totalDuration += offering.Duration
		totalPrice += offering.Price
		serviceIDs = append(serviceIDs, offering.ID)
	}

	endTime := startTime.Add(time.Duration(totalDuration) * time.Minute)

	window, err := slot.ParseWindow(salon.OpenTime, salon.CloseTime)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error parse salon operating window: %v", err))
		return response.Booking{}, errors.InternalServerError("error parse salon operating window")
	}

	paymentStatus := entity.PaymentPending
	if payload.PaymentStatus != "" {
		paymentStatus = entity.PaymentStatus(payload.PaymentStatus)
	}

	booking := entity.Booking{
		ID:            uuid.New(),
		SalonID:       salon.ID,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		ServiceIDs:    pq.StringArray(serviceIDs),
		StartTime:     startTime,
		EndTime:       endTime,
		Status:        entity.BookingPending,
		PaymentStatus: paymentStatus,
		PaymentMethod: payload.PaymentMethod,
		TotalPrice:    totalPrice,
		CreatedAt:     time.Now(),
	}

	err = u.repo.WithSalonSlotLock(ctx, salon.ID, func() error {
		existing, err := u.repo.FindBookingsBySalonID(ctx, salon.ID)
		if err != nil {
			return err
		}

		if err := slot.Check(window, startTime, endTime, existing); err != nil {
			return errors.Conflict(err.Error())
		}

		return u.repo.InsertBooking(ctx, &booking)
	})
	if err != nil {
		return response.Booking{}, err
	}

	// payment order creation and notification are fire and forget; the
	// booking is already durable and the outcome arrives asynchronously
	u.publishPaymentOrder(ctx, &booking)
	u.publishNotification(ctx, &booking)

	return toBookingResponse(booking), nil
}

func (u *usecase) GetBooking(ctx context.Context, bookingID string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}
	return toBookingResponse(booking), nil
}

func (u *usecase) ListBookingsByCustomer(ctx context.Context, customerID string) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

func (u *usecase) ListBookingsBySalon(ctx context.Context, salonID string) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsBySalonID(ctx, salonID)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

func (u *usecase) ListBookingsBySalonAndDate(ctx context.Context, salonID string, date time.Time) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsBySalonIDAndDate(ctx, salonID, date)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

// SetBookingStatus is the admin escape hatch: any status may be set directly,
// bypassing the payment-driven transitions. Re-setting the current status is
// a content no-op but is still persisted.
func (u *usecase) SetBookingStatus(ctx context.Context, bookingID string, status entity.BookingStatus) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "SetBookingStatus", "app.usecase")
	defer span.End()

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if err := u.repo.UpdateBookingStatus(ctx, bookingID, status, booking.PaymentStatus); err != nil {
		return response.Booking{}, err
	}

	booking.Status = status
	u.publishNotification(ctx, &booking)

	return toBookingResponse(booking), nil
}

// ApplyPaymentOutcome drives the payment-driven transitions: PAID confirms
// the booking, FAILED cancels it, both fields in one write. Replays of an
// outcome already applied change nothing and do not error. CONFIRM and
// CANCELLED are terminal for payment-driven transitions; only an admin status
// update can move a booking out of them.
func (u *usecase) ApplyPaymentOutcome(ctx context.Context, payload *request.PaymentOutcome) error {
	span, ctx := apm.StartSpan(ctx, "ApplyPaymentOutcome", "app.usecase")
	defer span.End()

	outcome := entity.PaymentStatus(payload.Outcome)
	status, ok := entity.StatusForOutcome(outcome)
	if !ok {
		return errors.BadRequest("unknown payment outcome")
	}

	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}

	if booking.Status == status && booking.PaymentStatus == outcome {
		// replayed event, already applied
		return nil
	}

	if booking.Status == entity.BookingCancelled && status != entity.BookingCancelled {
		u.log.Ctx(ctx).Warn(fmt.Sprintf("ignoring %s outcome for cancelled booking %s", outcome, payload.BookingID))
		return nil
	}

	if booking.Status == entity.BookingConfirm && status != entity.BookingConfirm {
		u.log.Ctx(ctx).Warn(fmt.Sprintf("ignoring %s outcome for confirmed booking %s", outcome, payload.BookingID))
		return nil
	}

	if err := u.repo.UpdateBookingStatus(ctx, payload.BookingID, status, outcome); err != nil {
		return err
	}

	booking.Status = status
	booking.PaymentStatus = outcome
	u.publishNotification(ctx, &booking)

	return nil
}

// ReconcilePaymentOutcome is the message-stream entry point. An outcome for a
// booking we have not observed yet is handed to the retry scheduler instead
// of failing the stream; the retry budget is bounded and exhaustion is
// surfaced as an operational alert by the task handler.
func (u *usecase) ReconcilePaymentOutcome(ctx context.Context, payload *request.PaymentOutcome) error {
	err := u.ApplyPaymentOutcome(ctx, payload)
	if err == nil {
		return nil
	}

	if !errors.IsNotFound(err) {
		return err
	}

	taskID, enqueueErr := u.repo.EnqueueReconciliationRetry(ctx, payload)
	if enqueueErr != nil {
		apm.CaptureError(ctx, enqueueErr).Send()
		return enqueueErr
	}

	u.log.Ctx(ctx).Info(fmt.Sprintf("booking %s not observed yet, scheduled reconciliation retry task %s", payload.BookingID, taskID))
	return nil
}

// BuildSalonReport folds over the salon's bookings. Earnings count only
// confirmed bookings; refunds count cancelled ones. Always computed fresh
// from the booking set.
func (u *usecase) BuildSalonReport(ctx context.Context, salonID string) (response.SalonReport, error) {
	span, ctx := apm.StartSpan(ctx, "BuildSalonReport", "app.usecase")
	defer span.End()

	salon, err := u.repo.GetSalonProfile(ctx, salonID)
	if err != nil {
		return response.SalonReport{}, err
	}

	bookings, err := u.repo.FindBookingsBySalonID(ctx, salonID)
	if err != nil {
		return response.SalonReport{}, err
	}

	report := response.SalonReport{
		SalonID:           salonID,
		SalonName:         salon.Name,
		TotalBookingCount: len(bookings),
	}

	for _, booking := range bookings {
		switch booking.Status {
		case entity.BookingConfirm:
			report.TotalEarnings += booking.TotalPrice
		case entity.BookingCancelled:
			report.CancelledBookingCount++
			report.TotalRefund += booking.TotalPrice
		}
	}

	return report, nil
}

func (u *usecase) publishPaymentOrder(ctx context.Context, booking *entity.Booking) {
	order := request.CreatePaymentOrder{
		BookingID:     booking.ID.String(),
		SalonID:       booking.SalonID,
		CustomerID:    booking.CustomerID,
		CustomerEmail: booking.CustomerEmail,
		Amount:        booking.TotalPrice,
	}

	jsonPayload, err := json.Marshal(order)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error marshal payment order: %v", err))
		return
	}

	if err := u.publish.Publish(TopicPaymentOrder, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish payment order: %v", err))
	}
}

func (u *usecase) publishNotification(ctx context.Context, booking *entity.Booking) {
	notification := request.BookingNotification{
		BookingID:      booking.ID.String(),
		Status:         string(booking.Status),
		PaymentStatus:  string(booking.PaymentStatus),
		EmailRecipient: booking.CustomerEmail,
	}

	jsonPayload, err := json.Marshal(notification)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error marshal booking notification: %v", err))
		return
	}

	if err := u.publish.Publish(TopicBookingNotification, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish booking notification: %v", err))
	}
}

func toBookingResponse(booking entity.Booking) response.Booking {
	return response.Booking{
		ID:            booking.ID.String(),
		SalonID:       booking.SalonID,
		CustomerID:    booking.CustomerID,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		ServiceIDs:    []string(booking.ServiceIDs),
		StartTime:     booking.StartTime.Format(request.TimeLayout),
		EndTime:       booking.EndTime.Format(request.TimeLayout),
		Status:        string(booking.Status),
		PaymentStatus: string(booking.PaymentStatus),
		PaymentMethod: booking.PaymentMethod,
		TotalPrice:    booking.TotalPrice,
	}
}

func toBookingResponses(bookings []entity.Booking) []response.Booking {
	responses := make([]response.Booking, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, toBookingResponse(booking))
	}
	return responses
}
