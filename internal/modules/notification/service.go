package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"mobileexperts/internal/domain"
	"mobileexperts/internal/modules/schedule"
)

// BusinessInfo feeds the message templates.
type BusinessInfo struct {
	Name    string
	Phone   string
	Address string
	Website string
}

func DefaultBusinessInfo() BusinessInfo {
	return BusinessInfo{
		Name:    "Mobile Experts",
		Phone:   "(929) 789-2786",
		Address: "1134 Liberty Ave, Brooklyn, NY 11208",
		Website: "https://mobileexpertsbrooklyn.com",
	}
}

// Service is the notification dispatcher: it consumes booking lifecycle
// events, renders SMS and email confirmations and records every attempt.
// Delivery failures are logged and swallowed; they must never reach the
// booking ledger.
type Service struct {
	repo  *Repository
	sms   SMSSender
	email EmailSender
	info  BusinessInfo
}

func NewService(repo *Repository, sms SMSSender, email EmailSender, info BusinessInfo) *Service {
	return &Service{repo: repo, sms: sms, email: email, info: info}
}

func (s *Service) BookingConfirmed(ctx context.Context, b domain.Booking) error {
	date := formatDate(b.Date)
	clock := schedule.FormatMinute(b.StartMinute)

	smsBody := fmt.Sprintf(
		"Thanks for booking with %s!\n\nBooking #: %s\nDate: %s\nTime: %s\n\n%s\n%s\n\nTrack your repair: %s/track?code=%s\n\nSee you soon!",
		s.info.Name, b.BookingNumber, date, clock, s.info.Address, s.info.Phone, s.info.Website, b.TrackingCode,
	)
	s.dispatch(ctx, b, TypeBookingConfirmed, ChannelSMS, b.CustomerPhone, "", smsBody)

	subject := fmt.Sprintf("Booking Confirmed - %s", s.info.Name)
	emailBody := fmt.Sprintf(
		"Hi %s,\n\nYour repair appointment is confirmed.\n\nBooking #: %s\nDevice: %s\nIssue: %s\nDate: %s\nTime: %s\n\nTrack your repair: %s/track?code=%s\n\n%s\n%s",
		b.CustomerName, b.BookingNumber, b.DeviceModel, b.IssueType, date, clock,
		s.info.Website, b.TrackingCode, s.info.Name, s.info.Address,
	)
	s.dispatch(ctx, b, TypeBookingConfirmed, ChannelEmail, b.CustomerEmail, subject, emailBody)

	return nil
}

func (s *Service) BookingCancelled(ctx context.Context, b domain.Booking) error {
	date := formatDate(b.Date)
	clock := schedule.FormatMinute(b.StartMinute)

	smsBody := fmt.Sprintf(
		"Your appointment at %s on %s at %s has been cancelled.\n\nNeed a new time? Book again: %s/book\n\n%s",
		s.info.Name, date, clock, s.info.Website, s.info.Phone,
	)
	s.dispatch(ctx, b, TypeBookingCancelled, ChannelSMS, b.CustomerPhone, "", smsBody)

	subject := fmt.Sprintf("Booking Cancelled - %s", s.info.Name)
	emailBody := fmt.Sprintf(
		"Hi %s,\n\nYour booking %s for %s at %s has been cancelled.",
		b.CustomerName, b.BookingNumber, date, clock,
	)
	if b.CancellationReason != "" {
		emailBody += "\nReason: " + b.CancellationReason
	}
	emailBody += fmt.Sprintf("\n\nYou can rebook any time: %s/book\n\n%s", s.info.Website, s.info.Name)
	s.dispatch(ctx, b, TypeBookingCancelled, ChannelEmail, b.CustomerEmail, subject, emailBody)

	return nil
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]Notification, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *Service) ListByBooking(ctx context.Context, bookingID int64) ([]Notification, error) {
	return s.repo.ListByBooking(ctx, bookingID)
}

func (s *Service) dispatch(ctx context.Context, b domain.Booking, t Type, ch Channel, to, subject, body string) {
	var err error
	switch ch {
	case ChannelSMS:
		err = s.sms.SendSMS(ctx, to, body)
	case ChannelEmail:
		err = s.email.SendEmail(ctx, to, subject, body)
	}
	if err != nil {
		log.Printf("notification: %s %s for booking %d failed: %v", ch, t, b.ID, err)
	}

	rec := &Notification{
		BookingID: b.ID,
		Type:      t,
		Channel:   ch,
		Recipient: to,
		Subject:   subject,
		Body:      body,
		Delivered: err == nil,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		log.Printf("notification: record for booking %d failed: %v", b.ID, err)
	}
}

func formatDate(date string) string {
	d, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}
