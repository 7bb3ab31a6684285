package usecases_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"salon-booking-service/internal/module/booking/mocks"
	"salon-booking-service/internal/module/booking/models/entity"
	"salon-booking-service/internal/module/booking/models/request"
	"salon-booking-service/internal/module/booking/models/response"
	"salon-booking-service/internal/module/booking/usecases"
	"salon-booking-service/internal/pkg/errors"
	log_internal "salon-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  *otelzap.Logger
	p        message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = NewMockPublisher()
	logMock = log_internal.Setup()
	uc = usecases.New(repoMock, logMock, p)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func lockPassthrough() func(ctx context.Context, salonID string, fn func() error) error {
	return func(ctx context.Context, salonID string, fn func() error) error {
		return fn()
	}
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	salonMock := response.SalonProfile{
		ID:        "salon-1",
		Name:      "Cut & Go",
		OpenTime:  "09:00",
		CloseTime: "18:00",
	}
	offeringsMock := []response.ServiceOffering{
		{ID: "svc-1", SalonID: "salon-1", Name: "Haircut", Duration: 30, Price: 100},
		{ID: "svc-2", SalonID: "salon-1", Name: "Coloring", Duration: 45, Price: 150},
	}
	customer := request.Customer{ID: "user-1", Name: "John Doe", Email: "john@test.com"}

	t.Run("success computes totals and persists", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			SalonID:       "salon-1",
			ServiceIDs:    []string{"svc-1", "svc-2"},
			StartTime:     "2024-06-10T10:00:00",
			PaymentMethod: "card",
		}

		var stored *entity.Booking

		// mock repo
		repoMock.On("GetSalonProfile", mock.Anything, "salon-1").Return(salonMock, nil)
		repoMock.On("GetServiceOfferings", mock.Anything, payloadMock.ServiceIDs).Return(offeringsMock, nil)
		repoMock.On("WithSalonSlotLock", mock.Anything, "salon-1", mock.AnythingOfType("func() error")).
			Return(lockPassthrough())
		repoMock.On("FindBookingsBySalonID", mock.Anything, "salon-1").Return([]entity.Booking{}, nil)
		repoMock.On("InsertBooking", mock.Anything, mock.AnythingOfType("*entity.Booking")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*entity.Booking)
			}).
			Return(nil)

		// test
		resp, err := uc.CreateBooking(ctx, &payloadMock, customer)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, int64(250), resp.TotalPrice)
		assert.Equal(t, "2024-06-10T10:00:00", resp.StartTime)
		assert.Equal(t, "2024-06-10T11:15:00", resp.EndTime)
		assert.Equal(t, string(entity.BookingPending), resp.Status)
		assert.Equal(t, string(entity.PaymentPending), resp.PaymentStatus)
		assert.Equal(t, customer.Email, resp.CustomerEmail)
		if assert.NotNil(t, stored) {
			assert.Equal(t, int64(250), stored.TotalPrice)
			assert.Equal(t, stored.StartTime.Add(75*time.Minute), stored.EndTime)
		}
	})

	t.Run("caller supplied payment status is preserved", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			SalonID:       "salon-2",
			ServiceIDs:    []string{"svc-1"},
			StartTime:     "2024-06-10T10:00:00",
			PaymentStatus: "PAID",
		}

		salonTwo := salonMock
		salonTwo.ID = "salon-2"

		repoMock.On("GetSalonProfile", mock.Anything, "salon-2").Return(salonTwo, nil)
		repoMock.On("GetServiceOfferings", mock.Anything, payloadMock.ServiceIDs).Return(offeringsMock[:1], nil)
		repoMock.On("WithSalonSlotLock", mock.Anything, "salon-2", mock.AnythingOfType("func() error")).
			Return(lockPassthrough())
		repoMock.On("FindBookingsBySalonID", mock.Anything, "salon-2").Return([]entity.Booking{}, nil)
		repoMock.On("InsertBooking", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)

		resp, err := uc.CreateBooking(ctx, &payloadMock, customer)

		assert.NoError(t, err)
		assert.Equal(t, string(entity.PaymentPaid), resp.PaymentStatus)
	})

	t.Run("empty service set rejected before any lookup", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			SalonID:    "salon-1",
			ServiceIDs: []string{},
			StartTime:  "2024-06-10T10:00:00",
		}

		_, err := uc.CreateBooking(ctx, &payloadMock, customer)

		assert.Error(t, err)
		assert.Equal(t, 400, errors.Code(err))
	})

	t.Run("malformed start time rejected", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			SalonID:    "salon-1",
			ServiceIDs: []string{"svc-1"},
			StartTime:  "10 o'clock",
		}

		_, err := uc.CreateBooking(ctx, &payloadMock, customer)

		assert.Error(t, err)
		assert.Equal(t, 400, errors.Code(err))
	})
}

func TestCreateBookingSlotConflict(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	salonMock := response.SalonProfile{
		ID:        "salon-1",
		Name:      "Cut & Go",
		OpenTime:  "09:00",
		CloseTime: "18:00",
	}
	offeringsMock := []response.ServiceOffering{
		{ID: "svc-1", SalonID: "salon-1", Name: "Haircut", Duration: 30, Price: 100},
	}
	customer := request.Customer{ID: "user-1", Name: "John Doe", Email: "john@test.com"}

	existingStart := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	existing := []entity.Booking{
		{
			ID:        uuid.New(),
			SalonID:   "salon-1",
			Status:    entity.BookingPending,
			StartTime: existingStart,
			EndTime:   existingStart.Add(30 * time.Minute),
		},
	}

	payloadMock := request.CreateBooking{
		SalonID:    "salon-1",
		ServiceIDs: []string{"svc-1"},
		StartTime:  "2024-06-10T10:15:00",
	}

	repoMock.On("GetSalonProfile", mock.Anything, "salon-1").Return(salonMock, nil)
	repoMock.On("GetServiceOfferings", mock.Anything, payloadMock.ServiceIDs).Return(offeringsMock, nil)
	repoMock.On("WithSalonSlotLock", mock.Anything, "salon-1", mock.AnythingOfType("func() error")).
		Return(lockPassthrough())
	repoMock.On("FindBookingsBySalonID", mock.Anything, "salon-1").Return(existing, nil)

	_, err := uc.CreateBooking(ctx, &payloadMock, customer)

	assert.Error(t, err)
	assert.Equal(t, 409, errors.Code(err))
	repoMock.AssertNotCalled(t, "InsertBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingConcurrentAttempts(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	salonMock := response.SalonProfile{
		ID:        "salon-1",
		Name:      "Cut & Go",
		OpenTime:  "09:00",
		CloseTime: "18:00",
	}
	offeringsMock := []response.ServiceOffering{
		{ID: "svc-1", SalonID: "salon-1", Name: "Haircut", Duration: 30, Price: 100},
	}
	customer := request.Customer{ID: "user-1", Name: "John Doe", Email: "john@test.com"}

	// the lock mock serializes the critical section with a real mutex and the
	// store mocks share one slice, so validate-then-insert runs under genuine
	// contention
	var mu sync.Mutex
	var stored []entity.Booking

	repoMock.On("GetSalonProfile", mock.Anything, "salon-1").Return(salonMock, nil)
	repoMock.On("GetServiceOfferings", mock.Anything, []string{"svc-1"}).Return(offeringsMock, nil)
	repoMock.On("WithSalonSlotLock", mock.Anything, "salon-1", mock.AnythingOfType("func() error")).
		Return(func(ctx context.Context, salonID string, fn func() error) error {
			mu.Lock()
			defer mu.Unlock()
			return fn()
		})
	repoMock.On("FindBookingsBySalonID", mock.Anything, "salon-1").
		Return(func(ctx context.Context, salonID string) []entity.Booking {
			return append([]entity.Booking(nil), stored...)
		}, nil)
	repoMock.On("InsertBooking", mock.Anything, mock.AnythingOfType("*entity.Booking")).
		Return(func(ctx context.Context, booking *entity.Booking) error {
			stored = append(stored, *booking)
			return nil
		})

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(42))
	starts := make([]string, 40)
	for i := range starts {
		offset := time.Duration(9*60+rng.Intn(8*60)) * time.Minute
		starts[i] = day.Add(offset).Format(request.TimeLayout)
	}

	var wg sync.WaitGroup
	for _, start := range starts {
		wg.Add(1)
		go func(start string) {
			defer wg.Done()
			payload := request.CreateBooking{
				SalonID:    "salon-1",
				ServiceIDs: []string{"svc-1"},
				StartTime:  start,
			}
			_, err := uc.CreateBooking(ctx, &payload, customer)
			if err != nil {
				assert.Equal(t, 409, errors.Code(err))
			}
		}(start)
	}
	wg.Wait()

	assert.NotEmpty(t, stored)
	for i := 0; i < len(stored); i++ {
		for j := i + 1; j < len(stored); j++ {
			a, b := stored[i], stored[j]
			overlap := a.StartTime.Before(b.EndTime) && a.EndTime.After(b.StartTime)
			assert.Falsef(t, overlap, "accepted bookings overlap: [%v,%v) vs [%v,%v)",
				a.StartTime, a.EndTime, b.StartTime, b.EndTime)
		}
	}
}

func TestApplyPaymentOutcome(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("paid outcome confirms booking", func(t *testing.T) {
		id := uuid.New()
		bookingMock := entity.Booking{
			ID:            id,
			SalonID:       "salon-1",
			Status:        entity.BookingPending,
			PaymentStatus: entity.PaymentPending,
		}

		repoMock.On("FindBookingByID", mock.Anything, id.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBookingStatus", mock.Anything, id.String(), entity.BookingConfirm, entity.PaymentPaid).Return(nil)

		err := uc.ApplyPaymentOutcome(ctx, &request.PaymentOutcome{BookingID: id.String(), Outcome: "PAID"})

		assert.NoError(t, err)
		repoMock.AssertCalled(t, "UpdateBookingStatus", mock.Anything, id.String(), entity.BookingConfirm, entity.PaymentPaid)
	})

	t.Run("failed outcome cancels booking", func(t *testing.T) {
		id := uuid.New()
		bookingMock := entity.Booking{
			ID:            id,
			SalonID:       "salon-1",
			Status:        entity.BookingPending,
			PaymentStatus: entity.PaymentPending,
		}

		repoMock.On("FindBookingByID", mock.Anything, id.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBookingStatus", mock.Anything, id.String(), entity.BookingCancelled, entity.PaymentFailed).Return(nil)

		err := uc.ApplyPaymentOutcome(ctx, &request.PaymentOutcome{BookingID: id.String(), Outcome: "FAILED"})

		assert.NoError(t, err)
	})

	t.Run("replayed outcome is a no-op", func(t *testing.T) {
		id := uuid.New()
		bookingMock := entity.Booking{
			ID:            id,
			SalonID:       "salon-1",
			Status:        entity.BookingConfirm,
			PaymentStatus: entity.PaymentPaid,
		}

		repoMock.On("FindBookingByID", mock.Anything, id.String()).Return(bookingMock, nil)

		err := uc.ApplyPaymentOutcome(ctx, &request.PaymentOutcome{BookingID: id.String(), Outcome: "PAID"})

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, id.String(), mock.Anything, mock.Anything)
	})

	t.Run("failed outcome never demotes a confirmed booking", func(t *testing.T) {
		id := uuid.New()
		bookingMock := entity.Booking{
			ID:            id,
			SalonID:       "salon-1",
			Status:        entity.BookingConfirm,
			PaymentStatus: entity.PaymentPaid,
		}

		repoMock.On("FindBookingByID", mock.Anything, id.String()).Return(bookingMock, nil)

		err := uc.ApplyPaymentOutcome(ctx, &request.PaymentOutcome{BookingID: id.String(), Outcome: "FAILED"})

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, id.String(), mock.Anything, mock.Anything)
	})

	t.Run("paid outcome never resurrects a cancelled booking", func(t *testing.T) {
		id := uuid.New()
		bookingMock := entity.Booking{
			ID:            id,
			SalonID:       "salon-1",
			Status:        entity.BookingCancelled,
			PaymentStatus: entity.PaymentFailed,
		}

		repoMock.On("FindBookingByID", mock.Anything, id.String()).Return(bookingMock, nil)

		err := uc.ApplyPaymentOutcome(ctx, &request.PaymentOutcome{BookingID: id.String(), Outcome: "PAID"})

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, id.String(), mock.Anything, mock.Anything)
	})

	t.Run("unknown booking propagates not found", func(t *testing.T) {
		repoMock.On("FindBookingByID", mock.Anything, "missing").Return(entity.Booking{}, errors.NotFound("booking not found"))

		err := uc.ApplyPaymentOutcome(ctx, &request.PaymentOutcome{BookingID: "missing", Outcome: "PAID"})

		assert.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestReconcilePaymentOutcome(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("unknown booking schedules a retry instead of failing", func(t *testing.T) {
		payloadMock := request.PaymentOutcome{BookingID: "missing", Outcome: "PAID"}

		repoMock.On("FindBookingByID", mock.Anything, "missing").Return(entity.Booking{}, errors.NotFound("booking not found"))
		repoMock.On("EnqueueReconciliationRetry", mock.Anything, &payloadMock).Return("task-1", nil)

		err := uc.ReconcilePaymentOutcome(ctx, &payloadMock)

		assert.NoError(t, err)
		repoMock.AssertCalled(t, "EnqueueReconciliationRetry", mock.Anything, &payloadMock)
	})

	t.Run("known booking applies immediately", func(t *testing.T) {
		id := uuid.New()
		bookingMock := entity.Booking{
			ID:            id,
			Status:        entity.BookingPending,
			PaymentStatus: entity.PaymentPending,
		}
		payloadMock := request.PaymentOutcome{BookingID: id.String(), Outcome: "PAID"}

		repoMock.On("FindBookingByID", mock.Anything, id.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBookingStatus", mock.Anything, id.String(), entity.BookingConfirm, entity.PaymentPaid).Return(nil)

		err := uc.ReconcilePaymentOutcome(ctx, &payloadMock)

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "EnqueueReconciliationRetry", mock.Anything, &payloadMock)
	})
}

func TestSetBookingStatus(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	id := uuid.New()
	bookingMock := entity.Booking{
		ID:            id,
		SalonID:       "salon-1",
		Status:        entity.BookingPending,
		PaymentStatus: entity.PaymentPending,
	}

	t.Run("sets requested status keeping payment status", func(t *testing.T) {
		repoMock.On("FindBookingByID", mock.Anything, id.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBookingStatus", mock.Anything, id.String(), entity.BookingCancelled, entity.PaymentPending).Return(nil)

		resp, err := uc.SetBookingStatus(ctx, id.String(), entity.BookingCancelled)

		assert.NoError(t, err)
		assert.Equal(t, string(entity.BookingCancelled), resp.Status)
		assert.Equal(t, string(entity.PaymentPending), resp.PaymentStatus)
	})

	t.Run("re-setting the current status still persists", func(t *testing.T) {
		repoMock.On("FindBookingByID", mock.Anything, id.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBookingStatus", mock.Anything, id.String(), entity.BookingPending, entity.PaymentPending).Return(nil)

		resp, err := uc.SetBookingStatus(ctx, id.String(), entity.BookingPending)

		assert.NoError(t, err)
		assert.Equal(t, string(entity.BookingPending), resp.Status)
		repoMock.AssertCalled(t, "UpdateBookingStatus", mock.Anything, id.String(), entity.BookingPending, entity.PaymentPending)
	})
}

func TestBuildSalonReport(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	salonMock := response.SalonProfile{
		ID:        "salon-1",
		Name:      "Cut & Go",
		OpenTime:  "09:00",
		CloseTime: "18:00",
	}
	bookingsMock := []entity.Booking{
		{ID: uuid.New(), SalonID: "salon-1", Status: entity.BookingConfirm, TotalPrice: 100},
		{ID: uuid.New(), SalonID: "salon-1", Status: entity.BookingCancelled, TotalPrice: 50},
		{ID: uuid.New(), SalonID: "salon-1", Status: entity.BookingPending, TotalPrice: 75},
	}

	repoMock.On("GetSalonProfile", mock.Anything, "salon-1").Return(salonMock, nil)
	repoMock.On("FindBookingsBySalonID", mock.Anything, "salon-1").Return(bookingsMock, nil)

	report, err := uc.BuildSalonReport(ctx, "salon-1")

	assert.NoError(t, err)
	assert.Equal(t, response.SalonReport{
		SalonID:               "salon-1",
		SalonName:             "Cut & Go",
		TotalEarnings:         100,
		TotalBookingCount:     3,
		CancelledBookingCount: 1,
		TotalRefund:           50,
	}, report)
}
