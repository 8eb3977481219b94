package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"mobileexperts/internal/domain"
)

func TestSlotsFor_EnumeratesWholeDay(t *testing.T) {
	c, err := NewCalendar([]domain.WeekdayHours{
		{Weekday: 1, OpensAt: 9 * 60, ClosesAt: 17 * 60},
	}, nil)
	assert.NoError(t, err)

	monday, _ := time.Parse(DateLayout, "2027-03-01")
	slots := c.SlotsFor(monday, 30)

	// 9:00 through 16:30 inclusive
	assert.Len(t, slots, 16)
	assert.Equal(t, 540, slots[0])
	assert.Equal(t, 990, slots[len(slots)-1])
}

func TestSlotsFor_DropsPartialTrailingSlot(t *testing.T) {
	c, err := NewCalendar([]domain.WeekdayHours{
		{Weekday: 1, OpensAt: 9 * 60, ClosesAt: 9*60 + 50},
	}, nil)
	assert.NoError(t, err)

	monday, _ := time.Parse(DateLayout, "2027-03-01")
	slots := c.SlotsFor(monday, 30)

	// 9:30 + 30min would run past 9:50, so only 9:00 qualifies
	assert.Equal(t, []int{540}, slots)
}

func TestSlotsFor_ClosedDayIsEmptyNotNil(t *testing.T) {
	c, err := NewCalendar([]domain.WeekdayHours{
		{Weekday: 1, OpensAt: 540, ClosesAt: 1020},
	}, nil)
	assert.NoError(t, err)

	sunday, _ := time.Parse(DateLayout, "2027-03-07")
	slots := c.SlotsFor(sunday, 30)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestSlotsFor_InvalidGranularity(t *testing.T) {
	c := mustCalendar(t, nil)
	monday, _ := time.Parse(DateLayout, "2027-03-01")
	assert.Empty(t, c.SlotsFor(monday, 0))
	assert.Empty(t, c.SlotsFor(monday, -15))
}

func TestFormatMinute(t *testing.T) {
	assert.Equal(t, "9:00 AM", FormatMinute(540))
	assert.Equal(t, "9:05 AM", FormatMinute(545))
	assert.Equal(t, "12:00 PM", FormatMinute(720))
	assert.Equal(t, "1:00 PM", FormatMinute(780))
	assert.Equal(t, "12:30 AM", FormatMinute(30))
	assert.Equal(t, "11:59 PM", FormatMinute(1439))
}
