package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mobileexperts/internal/domain"

	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type recordingSMS struct {
	to      []string
	bodies  []string
	failure error
}

func (r *recordingSMS) SendSMS(_ context.Context, to, message string) error {
	r.to = append(r.to, to)
	r.bodies = append(r.bodies, message)
	return r.failure
}

type recordingEmail struct {
	to       []string
	subjects []string
	bodies   []string
	failure  error
}

func (r *recordingEmail) SendEmail(_ context.Context, to, subject, body string) error {
	r.to = append(r.to, to)
	r.subjects = append(r.subjects, subject)
	r.bodies = append(r.bodies, body)
	return r.failure
}

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:notification_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Notification{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewRepository(db)
}

func testBooking() domain.Booking {
	return domain.Booking{
		ID:            41,
		BookingNumber: "ME-ABC123-XY7Q",
		TrackingCode:  "A7K2M9QX",
		Date:          "2027-03-01",
		StartMinute:   600,
		DeviceModel:   "iPhone 14 Pro",
		IssueType:     "screen",
		CustomerName:  "Jane Doe",
		CustomerPhone: "(718) 555-0142",
		CustomerEmail: "jane@example.com",
	}
}

func TestBookingConfirmed_SendsAndRecords(t *testing.T) {
	repo := setupTestRepo(t)
	sms := &recordingSMS{}
	email := &recordingEmail{}
	service := NewService(repo, sms, email, DefaultBusinessInfo())

	err := service.BookingConfirmed(context.Background(), testBooking())
	assert.NoError(t, err)

	if assert.Len(t, sms.bodies, 1) {
		assert.Contains(t, sms.bodies[0], "ME-ABC123-XY7Q")
		assert.Contains(t, sms.bodies[0], "A7K2M9QX")
		assert.Contains(t, sms.bodies[0], "10:00 AM")
		assert.Contains(t, sms.bodies[0], "Monday, March 1, 2027")
	}
	if assert.Len(t, email.bodies, 1) {
		assert.Equal(t, "jane@example.com", email.to[0])
		assert.Contains(t, email.subjects[0], "Booking Confirmed")
		assert.Contains(t, email.bodies[0], "iPhone 14 Pro")
	}

	recs, err := repo.ListByBooking(context.Background(), 41)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	for _, rec := range recs {
		assert.True(t, rec.Delivered)
		assert.Equal(t, TypeBookingConfirmed, rec.Type)
	}
}

func TestBookingCancelled_IncludesReason(t *testing.T) {
	repo := setupTestRepo(t)
	sms := &recordingSMS{}
	email := &recordingEmail{}
	service := NewService(repo, sms, email, DefaultBusinessInfo())

	b := testBooking()
	b.CancellationReason = "customer request"

	err := service.BookingCancelled(context.Background(), b)
	assert.NoError(t, err)

	if assert.Len(t, email.bodies, 1) {
		assert.Contains(t, email.bodies[0], "customer request")
	}

	recs, _ := repo.ListByBooking(context.Background(), 41)
	assert.Len(t, recs, 2)
	assert.Equal(t, TypeBookingCancelled, recs[0].Type)
}

func TestDispatch_DeliveryFailureIsSwallowed(t *testing.T) {
	repo := setupTestRepo(t)
	sms := &recordingSMS{failure: errors.New("twilio down")}
	email := &recordingEmail{}
	service := NewService(repo, sms, email, DefaultBusinessInfo())

	// The ledger must never see a delivery error
	err := service.BookingConfirmed(context.Background(), testBooking())
	assert.NoError(t, err)

	recs, _ := repo.ListByBooking(context.Background(), 41)
	if assert.Len(t, recs, 2) {
		delivered := map[Channel]bool{}
		for _, rec := range recs {
			delivered[rec.Channel] = rec.Delivered
		}
		assert.False(t, delivered[ChannelSMS])
		assert.True(t, delivered[ChannelEmail])
	}
}
