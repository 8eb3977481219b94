package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"mobileexperts/internal/domain"
	"mobileexperts/internal/pkg/ref"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service is the booking ledger: the single authority for creating,
// cancelling and completing bookings. Its guarantee is that the number of
// pending/confirmed bookings covering any minute of any date never exceeds
// the configured capacity, even under concurrent requests.
type Service struct {
	calendar    *Calendar
	bookings    BookingRepository
	catalog     ServiceCatalog
	events      EventSink
	capacity    int
	granularity int

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewService(calendar *Calendar, bookings BookingRepository, catalog ServiceCatalog, events EventSink, capacityPerSlot, granularityMinutes int) *Service {
	return &Service{
		calendar:    calendar,
		bookings:    bookings,
		catalog:     catalog,
		events:      events,
		capacity:    capacityPerSlot,
		granularity: granularityMinutes,
		locks:       make(map[string]*sync.Mutex),
	}
}

// lockDate serializes all writers touching the same calendar date. Readers
// do not take the lock; they may observe a slightly stale snapshot, which
// RequestBooking's check inside the critical section corrects.
func (s *Service) lockDate(date string) func() {
	s.locksMu.Lock()
	mu, ok := s.locks[date]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[date] = mu
	}
	s.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// RequestBooking atomically checks capacity and commits a new booking.
// On success the booking is returned in confirmed status and a
// BookingConfirmed event is emitted. Failures never mutate the store.
func (s *Service) RequestBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	day, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidRequest
	}
	if req.StartMinute < 0 || req.StartMinute >= domain.MinutesPerDay {
		return nil, ErrInvalidRequest
	}
	if req.CustomerName == "" || req.CustomerPhone == "" || req.CustomerEmail == "" {
		return nil, ErrInvalidRequest
	}

	duration := req.DurationMinutes
	var serviceID *int64
	if req.ServiceSlug != "" && s.catalog != nil {
		svc, err := s.catalog.GetBySlug(ctx, req.ServiceSlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidRequest
			}
			return nil, storageErr(err)
		}
		serviceID = &svc.ID
		if duration == 0 {
			duration = svc.DurationMinutes
		}
	}
	if duration == 0 {
		duration = s.granularity
	}
	if duration <= 0 || req.StartMinute+duration > domain.MinutesPerDay {
		return nil, ErrInvalidRequest
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	reqDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	if reqDay.Before(today) {
		return nil, ErrInvalidRequest
	}
	if reqDay.Equal(today) && req.StartMinute <= now.Hour()*60+now.Minute() {
		return nil, ErrInvalidRequest
	}

	hours, open := s.calendar.HoursFor(day)
	if !open || req.StartMinute < hours.OpensAt || req.StartMinute+duration > hours.ClosesAt {
		return nil, ErrOutOfHours
	}

	unlock := s.lockDate(req.Date)
	defer unlock()

	count, err := s.bookings.CountOverlapping(ctx, req.Date, req.StartMinute, req.StartMinute+duration)
	if err != nil {
		return nil, storageErr(err)
	}
	if count >= int64(s.capacity) {
		return nil, ErrSlotFull
	}

	b := &domain.Booking{
		BookingNumber:   ref.BookingNumber(now),
		TrackingCode:    ref.TrackingCode(),
		Date:            req.Date,
		StartMinute:     req.StartMinute,
		DurationMinutes: duration,
		ServiceID:       serviceID,
		DeviceModel:     req.DeviceModel,
		IssueType:       req.IssueType,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		Notes:           req.Notes,
		Status:          domain.BookingPending,
		CreatedAt:       now,
		LastTransition:  now,
	}

	// The pending window closes inside the same critical section: the
	// capacity check above already admitted this interval, so the booking
	// is persisted confirmed in a single insert.
	b.Status = domain.BookingConfirmed

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return nil, ErrSlotFull
		}
		return nil, storageErr(err)
	}

	if s.events != nil {
		_ = s.events.BookingConfirmed(ctx, *b)
	}

	return b, nil
}

// CancelBooking transitions a pending/confirmed booking to cancelled and
// frees its capacity immediately. Cancelling a booking already in a
// terminal state fails with ErrInvalidTransition and emits nothing.
func (s *Service) CancelBooking(ctx context.Context, bookingID int64, reason string) error {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	unlock := s.lockDate(b.Date)
	defer unlock()

	// Re-read inside the lock; a concurrent cancel may have won.
	b, err = s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.Status.IsTerminal() {
		return ErrInvalidTransition
	}

	now := time.Now()
	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled, reason, now); err != nil {
		return storageErr(err)
	}

	b.Status = domain.BookingCancelled
	b.LastTransition = now
	b.CancelledAt = &now
	b.CancellationReason = reason

	if s.events != nil {
		_ = s.events.BookingCancelled(ctx, *b)
	}

	return nil
}

// CompleteBooking marks a confirmed booking as completed. It is driven by
// an operational event after the appointment, so it has no availability
// side effect and emits no notification.
func (s *Service) CompleteBooking(ctx context.Context, bookingID int64) error {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	unlock := s.lockDate(b.Date)
	defer unlock()

	// Re-read inside the lock; a concurrent cancel may have won.
	b, err = s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.Status != domain.BookingConfirmed {
		return ErrInvalidTransition
	}
	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCompleted, "", time.Now()); err != nil {
		return storageErr(err)
	}
	return nil
}

// ListAvailability composes the slot generator with the occupancy of the
// committed bookings. Read-only; safe to call concurrently with writers at
// the cost of a momentarily stale snapshot.
func (s *Service) ListAvailability(ctx context.Context, dateStr string, durationMinutes int) (*AvailabilityResponse, error) {
	day, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, ErrInvalidRequest
	}
	if durationMinutes == 0 {
		durationMinutes = s.granularity
	}
	if durationMinutes < 0 {
		return nil, ErrInvalidRequest
	}

	resp := &AvailabilityResponse{Date: dateStr, Slots: []SlotAvailability{}}

	hours, open := s.calendar.HoursFor(day)
	if !open {
		return resp, nil
	}
	resp.Open = true
	resp.Hours = &hours

	active, err := s.bookings.ListActiveByDate(ctx, dateStr)
	if err != nil {
		return nil, storageErr(err)
	}

	for _, start := range s.calendar.SlotsFor(day, s.granularity) {
		remaining := s.capacity - overlapCount(active, dateStr, start, start+durationMinutes)
		if remaining < 0 {
			remaining = 0
		}
		resp.Slots = append(resp.Slots, SlotAvailability{
			StartMinute:       start,
			Label:             FormatMinute(start),
			RemainingCapacity: remaining,
			Available:         remaining > 0,
		})
	}

	return resp, nil
}

// TrackBooking resolves the customer-facing tracking code used by the
// order-status page.
func (s *Service) TrackBooking(ctx context.Context, code string) (*domain.Booking, error) {
	b, err := s.bookings.GetByTrackingCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr(err)
	}
	return b, nil
}

// GetBooking returns a booking by its internal id.
func (s *Service) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.getBooking(ctx, bookingID)
}

// ListBookingsForDate returns every booking of a date regardless of status.
func (s *Service) ListBookingsForDate(ctx context.Context, dateStr string) ([]domain.Booking, error) {
	if _, err := time.Parse(DateLayout, dateStr); err != nil {
		return nil, ErrInvalidRequest
	}
	list, err := s.bookings.ListByDate(ctx, dateStr)
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr(err)
	}
	return b, nil
}

func overlapCount(bookings []domain.Booking, date string, startMinute, endMinute int) int {
	n := 0
	for i := range bookings {
		if bookings[i].Active() && bookings[i].Overlaps(date, startMinute, endMinute) {
			n++
		}
	}
	return n
}

func storageErr(err error) error {
	return errors.Join(ErrStorageUnavailable, err)
}
