package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether no further status transition is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// Booking is a committed, capacity-consuming repair appointment.
// Date is a calendar day ("2006-01-02", timezone-naive); the time of day
// lives in StartMinute/DurationMinutes as minutes-of-day.
type Booking struct {
	ID              int64         `json:"id"`
	BookingNumber   string        `json:"booking_number"`
	TrackingCode    string        `json:"tracking_code"`
	Date            string        `json:"date" validate:"required"`
	StartMinute     int           `json:"start_minute"`
	DurationMinutes int           `json:"duration_minutes" validate:"gt=0"`
	ServiceID       *int64        `json:"service_id,omitempty"`
	DeviceModel     string        `json:"device_model,omitempty"`
	IssueType       string        `json:"issue_type,omitempty"`
	CustomerName    string        `json:"customer_name" validate:"required"`
	CustomerPhone   string        `json:"customer_phone" validate:"required"`
	CustomerEmail   string        `json:"customer_email" validate:"required,email"`
	Notes           string        `json:"notes,omitempty" gorm:"type:text"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	LastTransition  time.Time     `json:"last_transition_at"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`

	CancellationReason string `json:"cancellation_reason,omitempty" gorm:"type:text"`
}

// EndMinute is the exclusive end of the occupied interval.
func (b *Booking) EndMinute() int {
	return b.StartMinute + b.DurationMinutes
}

// Overlaps reports whether the booking occupies any minute of
// [startMinute, endMinute) on the given date. Both intervals are half-open.
func (b *Booking) Overlaps(date string, startMinute, endMinute int) bool {
	if b.Date != date {
		return false
	}
	return b.StartMinute < endMinute && startMinute < b.EndMinute()
}

// Active reports whether the booking still consumes slot capacity.
func (b *Booking) Active() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
