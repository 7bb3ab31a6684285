package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"salon-booking-service/config"
	"salon-booking-service/internal/module/booking/models/entity"
	"salon-booking-service/internal/module/booking/models/request"
	"salon-booking-service/internal/module/booking/models/response"
	"salon-booking-service/internal/pkg/errors"
	"salon-booking-service/internal/pkg/scheduler"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db                 *sqlx.DB
	log                *otelzap.Logger
	httpClient         *circuit.HTTPClient
	redisClient        *redis.Client
	redsync            *redsync.Redsync
	asynqClient        *asynq.Client
	cfgUserService     *config.UserServiceConfig
	cfgSalonService    *config.SalonServiceConfig
	cfgServiceOffering *config.ServiceOfferingServiceConfig
	cfgReconciliation  *config.ReconciliationConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	GetSalonProfile(ctx context.Context, salonID string) (response.SalonProfile, error)
	GetServiceOfferings(ctx context.Context, serviceIDs []string) ([]response.ServiceOffering, error)
	// lock
	WithSalonSlotLock(ctx context.Context, salonID string, fn func() error) error
	// db
	InsertBooking(ctx context.Context, booking *entity.Booking) error
	UpdateBookingStatus(ctx context.Context, bookingID string, status entity.BookingStatus, paymentStatus entity.PaymentStatus) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByCustomerID(ctx context.Context, customerID string) ([]entity.Booking, error)
	FindBookingsBySalonID(ctx context.Context, salonID string) ([]entity.Booking, error)
	FindBookingsBySalonIDAndDate(ctx context.Context, salonID string, date time.Time) ([]entity.Booking, error)
	// scheduler
	EnqueueReconciliationRetry(ctx context.Context, payload *request.PaymentOutcome) (string, error)
}

func New(
	db *sqlx.DB,
	log *otelzap.Logger,
	httpClient *circuit.HTTPClient,
	redisClient *redis.Client,
	rs *redsync.Redsync,
	asynqClient *asynq.Client,
	cfgUserService *config.UserServiceConfig,
	cfgSalonService *config.SalonServiceConfig,
	cfgServiceOffering *config.ServiceOfferingServiceConfig,
	cfgReconciliation *config.ReconciliationConfig,
) Repositories {
	return &repositories{
		db:                 db,
		log:                log,
		httpClient:         httpClient,
		redisClient:        redisClient,
		redsync:            rs,
		asynqClient:        asynqClient,
		cfgUserService:     cfgUserService,
		cfgSalonService:    cfgSalonService,
		cfgServiceOffering: cfgServiceOffering,
		cfgReconciliation:  cfgReconciliation,
	}
}

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s",
		r.cfgUserService.Host, r.cfgUserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Ctx(ctx).Error(fmt.Sprintf("invalid token: status %d", resp.StatusCode))
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		r.log.Ctx(ctx).Error("invalid token")
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}

// GetSalonProfile implements Repositories. Profiles are cached briefly so a
// burst of booking attempts for one salon does not hammer the salon service.
func (r *repositories) GetSalonProfile(ctx context.Context, salonID string) (response.SalonProfile, error) {
	cacheKey := "salon_profile:" + salonID
	if cached, err := r.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var profile response.SalonProfile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return profile, nil
		}
	}

	url := fmt.Sprintf("http://%s:%s/api/salons/%s",
		r.cfgSalonService.Host, r.cfgSalonService.Port, salonID)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.SalonProfile{}, errors.InternalServerError("error get salon profile")
	}

	defer resp.Body.Close()

	if resp.StatusCode == 404 {
		return response.SalonProfile{}, errors.NotFound("salon not found")
	}
	if resp.StatusCode != 200 {
		return response.SalonProfile{}, errors.InternalServerError("error get salon profile")
	}

	var profile response.SalonProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return response.SalonProfile{}, errors.InternalServerError("error parse salon profile")
	}

	if raw, err := json.Marshal(profile); err == nil {
		ttl := time.Duration(r.cfgSalonService.CacheTTLSeconds) * time.Second
		if err := r.redisClient.Set(ctx, cacheKey, raw, ttl).Err(); err != nil {
			r.log.Ctx(ctx).Warn(fmt.Sprintf("error cache salon profile: %v", err))
		}
	}

	return profile, nil
}

// GetServiceOfferings implements Repositories.
func (r *repositories) GetServiceOfferings(ctx context.Context, serviceIDs []string) ([]response.ServiceOffering, error) {
	offerings := make([]response.ServiceOffering, 0, len(serviceIDs))
	for _, serviceID := range serviceIDs {
		url := fmt.Sprintf("http://%s:%s/api/service-offering/%s",
			r.cfgServiceOffering.Host, r.cfgServiceOffering.Port, serviceID)
		resp, err := r.httpClient.Get(url)
		if err != nil {
			return nil, errors.InternalServerError("error get service offering")
		}

		if resp.StatusCode == 404 {
			resp.Body.Close()
			return nil, errors.NotFound(fmt.Sprintf("service offering %s not found", serviceID))
		}
		if resp.StatusCode != 200 {
			resp.Body.Close()
			return nil, errors.InternalServerError("error get service offering")
		}

		var offering response.ServiceOffering
		if err := json.NewDecoder(resp.Body).Decode(&offering); err != nil {
			resp.Body.Close()
			return nil, errors.InternalServerError("error parse service offering")
		}
		resp.Body.Close()

		offerings = append(offerings, offering)
	}

	return offerings, nil
}

// WithSalonSlotLock implements Repositories. It serializes the
// validate-then-insert critical section per salon across all instances of
// this service, so two concurrent requests for overlapping intervals cannot
// both pass validation.
func (r *repositories) WithSalonSlotLock(ctx context.Context, salonID string, fn func() error) error {
	mutex := r.redsync.NewMutex(
		"salon_slot_lock:"+salonID,
		redsync.WithExpiry(8*time.Second),
		redsync.WithTries(16),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return errors.InternalServerError("error acquire salon slot lock")
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			r.log.Ctx(ctx).Warn(fmt.Sprintf("error release salon slot lock: %v", err))
		}
	}()

	return fn()
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (id, salon_id, customer_id, customer_name, customer_email, service_ids, start_time, end_time, status, payment_status, payment_method, total_price, created_at)
		VALUES (:id, :salon_id, :customer_id, :customer_name, :customer_email, :service_ids, :start_time, :end_time, :status, :payment_status, :payment_method, :total_price, :created_at)
	`, booking)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error insert booking")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// UpdateBookingStatus implements Repositories. Status and payment status move
// in the same write so the two fields can never be observed out of step.
func (r *repositories) UpdateBookingStatus(ctx context.Context, bookingID string, status entity.BookingStatus, paymentStatus entity.PaymentStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	// Lock the row for update
	var existing entity.Booking
	err = tx.GetContext(ctx, &existing, `SELECT * FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return errors.NotFound("booking not found")
	}
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error locking rows")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, payment_status = $2, updated_at = NOW()
		WHERE id = $3
	`, status, paymentStatus, bookingID)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error update booking status")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT * FROM bookings WHERE id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByCustomerID implements Repositories.
func (r *repositories) FindBookingsByCustomerID(ctx context.Context, customerID string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, `SELECT * FROM bookings WHERE customer_id = $1 ORDER BY start_time`, customerID)
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by customer id")
	}
	return bookings, nil
}

// FindBookingsBySalonID implements Repositories.
func (r *repositories) FindBookingsBySalonID(ctx context.Context, salonID string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, `SELECT * FROM bookings WHERE salon_id = $1 ORDER BY start_time`, salonID)
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by salon id")
	}
	return bookings, nil
}

// FindBookingsBySalonIDAndDate implements Repositories. A booking matches the
// day when either its start or its end falls on it, so intervals crossing
// midnight show up on both days.
func (r *repositories) FindBookingsBySalonIDAndDate(ctx context.Context, salonID string, date time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT * FROM bookings
		WHERE salon_id = $1 AND (start_time::date = $2::date OR end_time::date = $2::date)
		ORDER BY start_time
	`, salonID, date.Format("2006-01-02"))
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by salon id and date")
	}
	return bookings, nil
}

// EnqueueReconciliationRetry implements Repositories. Outcomes for bookings
// we have not observed yet are retried on a bounded budget instead of being
// dropped.
func (r *repositories) EnqueueReconciliationRetry(ctx context.Context, payload *request.PaymentOutcome) (string, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", errors.InternalServerError("error marshal reconciliation payload")
	}

	task := asynq.NewTask(scheduler.TypeReconcilePaymentOutcome, jsonPayload)
	info, err := r.asynqClient.EnqueueContext(ctx, task,
		asynq.ProcessIn(time.Duration(r.cfgReconciliation.RetryDelaySeconds)*time.Second),
		asynq.MaxRetry(r.cfgReconciliation.MaxRetry),
	)
	if err != nil {
		return "", errors.InternalServerError("error enqueue reconciliation retry")
	}

	return info.ID, nil
}
