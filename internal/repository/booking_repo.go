package repository

import (
	"context"
	"time"

	"mobileexperts/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	BookingNumber      string     `gorm:"column:booking_number;uniqueIndex"`
	TrackingCode       string     `gorm:"column:tracking_code;uniqueIndex"`
	Date               string     `gorm:"column:date;index"`
	StartMinute        int        `gorm:"column:start_minute"`
	DurationMinutes    int        `gorm:"column:duration_minutes"`
	ServiceID          *int64     `gorm:"column:service_id"`
	DeviceModel        string     `gorm:"column:device_model"`
	IssueType          string     `gorm:"column:issue_type"`
	CustomerName       string     `gorm:"column:customer_name"`
	CustomerPhone      string     `gorm:"column:customer_phone"`
	CustomerEmail      string     `gorm:"column:customer_email"`
	Notes              *string    `gorm:"column:notes"`
	Status             string     `gorm:"column:status;index:idx_bookings_date_status,priority:2"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	LastTransitionAt   time.Time  `gorm:"column:last_transition_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, reason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		BookingNumber:      m.BookingNumber,
		TrackingCode:       m.TrackingCode,
		Date:               m.Date,
		StartMinute:        m.StartMinute,
		DurationMinutes:    m.DurationMinutes,
		ServiceID:          m.ServiceID,
		DeviceModel:        m.DeviceModel,
		IssueType:          m.IssueType,
		CustomerName:       m.CustomerName,
		CustomerPhone:      m.CustomerPhone,
		CustomerEmail:      m.CustomerEmail,
		Notes:              notes,
		Status:             domain.BookingStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		LastTransition:     m.LastTransitionAt,
		CancelledAt:        m.CancelledAt,
		CancellationReason: reason,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, reason *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:                 b.ID,
		BookingNumber:      b.BookingNumber,
		TrackingCode:       b.TrackingCode,
		Date:               b.Date,
		StartMinute:        b.StartMinute,
		DurationMinutes:    b.DurationMinutes,
		ServiceID:          b.ServiceID,
		DeviceModel:        b.DeviceModel,
		IssueType:          b.IssueType,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		CustomerEmail:      b.CustomerEmail,
		Notes:              notes,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		LastTransitionAt:   b.LastTransition,
		CancelledAt:        b.CancelledAt,
		CancellationReason: reason,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByTrackingCode(ctx context.Context, code string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("tracking_code = ?", code).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CountOverlapping counts capacity-consuming bookings whose half-open
// minute interval intersects [startMinute, endMinute) on the date.
func (r *BookingRepository) CountOverlapping(ctx context.Context, date string, startMinute, endMinute int) (int64, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE date = ?
  AND status IN ('pending', 'confirmed')
  AND start_minute < ?
  AND start_minute + duration_minutes > ?
`
	tx := r.db.WithContext(ctx).Raw(q, date, endMinute, startMinute).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) ListActiveByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	return r.listByDate(ctx, date, true)
}

func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	return r.listByDate(ctx, date, false)
}

func (r *BookingRepository) listByDate(ctx context.Context, date string, activeOnly bool) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Where("date = ?", date)
	if activeOnly {
		q = q.Where("status IN ?", []string{
			string(domain.BookingPending),
			string(domain.BookingConfirmed),
		})
	}

	var models []bookingModel
	if tx := q.Order("start_minute ASC").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, reason string, at time.Time) error {
	updates := map[string]any{
		"status":             string(status),
		"last_transition_at": at,
	}
	if status == domain.BookingCancelled {
		updates["cancelled_at"] = at
		if reason != "" {
			updates["cancellation_reason"] = reason
		}
	}

	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
