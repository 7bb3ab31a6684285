package handler

import (
	"context"
	"fmt"
	"time"

	"salon-booking-service/internal/module/booking/models/entity"
	"salon-booking-service/internal/module/booking/models/request"
	"salon-booking-service/internal/module/booking/usecases"
	"salon-booking-service/internal/pkg/errors"
	"salon-booking-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	customer := request.Customer{
		ID:    ctx.Locals("user_id").(string),
		Name:  ctx.Locals("user_name").(string),
		Email: ctx.Locals("email_user").(string),
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req, customer)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("booking_id")

	resp, err := h.Usecase.GetBooking(ctx.UserContext(), bookingID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) ShowCustomerBookings(ctx *fiber.Ctx) error {
	customerID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.ListBookingsByCustomer(ctx.UserContext(), customerID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show customer bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show customer bookings")
}

func (h *BookingHandler) ShowSalonBookings(ctx *fiber.Ctx) error {
	salonID := ctx.Query("salon_id")
	if salonID == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("salon_id is required"))
	}

	resp, err := h.Usecase.ListBookingsBySalon(ctx.UserContext(), salonID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show salon bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show salon bookings")
}

func (h *BookingHandler) ShowSalonBookingsByDate(ctx *fiber.Ctx) error {
	salonID := ctx.Params("salon_id")

	date, err := time.Parse(request.DateLayout, ctx.Params("date"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse date: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse date"))
	}

	resp, err := h.Usecase.ListBookingsBySalonAndDate(ctx.UserContext(), salonID, date)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show salon bookings by date: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show salon bookings by date")
}

func (h *BookingHandler) ShowSalonReport(ctx *fiber.Ctx) error {
	salonID := ctx.Query("salon_id")
	if salonID == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("salon_id is required"))
	}

	resp, err := h.Usecase.BuildSalonReport(ctx.UserContext(), salonID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error build salon report: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success build salon report")
}

func (h *BookingHandler) UpdateBookingStatus(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("booking_id")

	var req request.UpdateBookingStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.SetBookingStatus(ctx.UserContext(), bookingID, entity.BookingStatus(req.Status))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update booking status")
}

// UpdatePaymentStatus is the synchronous face of payment reconciliation, used
// by the payment service when it calls back over HTTP instead of the stream.
func (h *BookingHandler) UpdatePaymentStatus(ctx *fiber.Ctx) error {
	req := request.PaymentOutcome{
		BookingID: ctx.Params("booking_id"),
		Outcome:   ctx.Query("outcome"),
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.ApplyPaymentOutcome(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error apply payment outcome: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success apply payment outcome")
}

// ConsumePaymentOutcome handles payment outcome events from the payment
// service. A returned error hands the event to the router's poison queue
// middleware; outcomes for bookings not yet observed are handed to the retry
// scheduler inside the usecase.
func (h *BookingHandler) ConsumePaymentOutcome(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.PaymentOutcome
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		return err
	}

	ctx := context.Background()

	if err := h.Usecase.ReconcilePaymentOutcome(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error reconcile payment outcome: %v", err))
		return err
	}

	return nil
}

// HandleReconciliationRetry re-applies a deferred payment outcome. When the
// retry budget is exhausted the event is surfaced as an operational alert,
// never silently discarded.
func (h *BookingHandler) HandleReconciliationRetry(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentOutcome
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	err := h.Usecase.ApplyPaymentOutcome(ctx, &req)
	if err == nil {
		return nil
	}

	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	if retried >= maxRetry {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("payment outcome for booking %s unresolved after %d retries: %v", req.BookingID, retried, err))
		apm.CaptureError(ctx, err).Send()
	}

	return err
}
