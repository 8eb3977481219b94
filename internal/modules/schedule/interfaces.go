package schedule

import (
	"context"
	"time"

	"mobileexperts/internal/domain"
)

// BookingRepository is the ledger's view of booking storage.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTrackingCode(ctx context.Context, code string) (*domain.Booking, error)
	// CountOverlapping counts pending/confirmed bookings on date whose
	// [start_minute, start_minute+duration) interval overlaps
	// [startMinute, endMinute).
	CountOverlapping(ctx context.Context, date string, startMinute, endMinute int) (int64, error)
	// ListActiveByDate returns the pending/confirmed bookings for a date,
	// ordered by start minute.
	ListActiveByDate(ctx context.Context, date string) ([]domain.Booking, error)
	ListByDate(ctx context.Context, date string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, reason string, at time.Time) error
}

// ServiceCatalog resolves a service slug to its catalog entry so a booking
// request can inherit the service's duration estimate.
type ServiceCatalog interface {
	GetBySlug(ctx context.Context, slug string) (*domain.RepairService, error)
}

// EventSink receives booking lifecycle events. Dispatch is fire-and-forget:
// the ledger never awaits delivery and never rolls back on sink errors.
type EventSink interface {
	BookingConfirmed(ctx context.Context, b domain.Booking) error
	BookingCancelled(ctx context.Context, b domain.Booking) error
}
