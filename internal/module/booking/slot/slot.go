// Package slot decides whether a candidate [start, end) interval may be
// reserved at a salon. It is a pure decision function: no clock, no store.
package slot

import (
	"errors"
	"fmt"
	"time"

	"salon-booking-service/internal/module/booking/models/entity"
)

var (
	// ErrOutsideOperatingHours rejects candidates outside the salon's
	// operating window for the calendar day of the candidate start.
	ErrOutsideOperatingHours = errors.New("booking time must be within salon's working hours")

	// ErrSlotTaken rejects candidates that collide with an existing
	// non-cancelled booking.
	ErrSlotTaken = errors.New("slot not available")
)

// Window is a salon's daily operating window. Only the time-of-day of Open
// and Close is meaningful; Close earlier than Open means the window spans
// midnight.
type Window struct {
	Open  time.Time
	Close time.Time
}

const clockLayout = "15:04"

func ParseWindow(open, close string) (Window, error) {
	openAt, err := time.Parse(clockLayout, open)
	if err != nil {
		return Window{}, fmt.Errorf("parse open time %q: %w", open, err)
	}

	closeAt, err := time.Parse(clockLayout, close)
	if err != nil {
		return Window{}, fmt.Errorf("parse close time %q: %w", close, err)
	}

	return Window{Open: openAt, Close: closeAt}, nil
}

// Check validates a candidate interval against the operating window and the
// existing bookings of the same salon. Cancelled bookings never block.
//
// Overlap uses half-open interval arithmetic: [s1,e1) and [s2,e2) collide iff
// s1 < e2 && e1 > s2. On top of that, exact boundary coincidence with an
// existing booking (equal start or equal end) is rejected as well, which
// turns away some back-to-back candidates a pure half-open test would let
// through.
func Check(w Window, start, end time.Time, existing []entity.Booking) error {
	openAt := atDay(start, w.Open)
	closeAt := atDay(start, w.Close)
	if closeAt.Before(openAt) {
		closeAt = closeAt.AddDate(0, 0, 1)
	}

	if start.Before(openAt) || end.After(closeAt) {
		return fmt.Errorf("%w: %s - %s",
			ErrOutsideOperatingHours,
			w.Open.Format(clockLayout), w.Close.Format(clockLayout))
	}

	for _, booking := range existing {
		if booking.Status == entity.BookingCancelled {
			continue
		}

		if start.Before(booking.EndTime) && end.After(booking.StartTime) {
			return fmt.Errorf("%w: overlaps booking %s", ErrSlotTaken, booking.ID)
		}

		if start.Equal(booking.StartTime) || end.Equal(booking.EndTime) {
			return fmt.Errorf("%w: boundary coincides with booking %s", ErrSlotTaken, booking.ID)
		}
	}

	return nil
}

func atDay(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, day.Location())
}
