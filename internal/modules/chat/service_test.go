package chat

import (
	"testing"
	"time"

	"mobileexperts/internal/modules/schedule"

	"github.com/stretchr/testify/assert"
)

type fixedCalendar struct {
	hours schedule.DayHours
	open  bool
}

func (c fixedCalendar) HoursFor(time.Time) (schedule.DayHours, bool) {
	return c.hours, c.open
}

func openCalendar() fixedCalendar {
	return fixedCalendar{hours: schedule.DayHours{OpensAt: 9 * 60, ClosesAt: 21 * 60}, open: true}
}

func TestRespond_BookingIntent(t *testing.T) {
	service := NewService(openCalendar())

	reply := service.Respond("I want to book an appointment")

	assert.NotEmpty(t, reply.Text)
	if assert.Len(t, reply.Actions, 1) {
		assert.Equal(t, ActionStartBooking, reply.Actions[0].Type)
	}
}

func TestRespond_HoursIntent(t *testing.T) {
	service := NewService(openCalendar())

	reply := service.Respond("What are your hours?")

	assert.Contains(t, reply.Text, "9:00 AM")
	assert.Contains(t, reply.Text, "9:00 PM")
}

func TestRespond_HoursWhenClosed(t *testing.T) {
	service := NewService(fixedCalendar{open: false})

	reply := service.Respond("are you open today")

	assert.Contains(t, reply.Text, "closed today")
}

func TestRespond_QuoteIntent(t *testing.T) {
	service := NewService(openCalendar())

	reply := service.Respond("how much does a screen repair cost")

	if assert.Len(t, reply.Actions, 1) {
		assert.Equal(t, ActionQuote, reply.Actions[0].Type)
	}
}

func TestRespond_TrackingIntent(t *testing.T) {
	service := NewService(openCalendar())

	reply := service.Respond("where is my order")

	if assert.Len(t, reply.Actions, 1) {
		assert.Equal(t, ActionRedirect, reply.Actions[0].Type)
		assert.Equal(t, "/track", reply.Actions[0].Path)
	}
}

func TestRespond_FallbackOffersChoices(t *testing.T) {
	service := NewService(openCalendar())

	reply := service.Respond("asdf qwerty")

	assert.NotEmpty(t, reply.Text)
	assert.Len(t, reply.Actions, 2)
}

func TestRespond_EmptyMessage(t *testing.T) {
	service := NewService(openCalendar())

	reply := service.Respond("   ")

	assert.NotEmpty(t, reply.Text)
	assert.Empty(t, reply.Actions)
}
