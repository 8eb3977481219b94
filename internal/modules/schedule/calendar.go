package schedule

import (
	"fmt"
	"time"

	"mobileexperts/internal/domain"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// DayHours is the open range of a single day in minutes-of-day,
// half-open: the shop closes at ClosesAt sharp.
type DayHours struct {
	OpensAt  int `json:"opens_at"`
	ClosesAt int `json:"closes_at"`
}

type weekdayRule struct {
	opensAt  int
	closesAt int
	closed   bool
}

type blackoutRule struct {
	fullDay  bool
	opensAt  *int
	closesAt *int
}

// Calendar answers "is this date open, and during what minute range".
// It is built once at startup from the weekly hours table plus blackout
// overrides and is safe for concurrent reads.
type Calendar struct {
	week      [7]weekdayRule
	blackouts map[string]blackoutRule
}

// NewCalendar validates and indexes the configured hours. Weekdays missing
// from the table are treated as closed. An open weekday must satisfy
// 0 <= opensAt < closesAt <= MinutesPerDay.
func NewCalendar(week []domain.WeekdayHours, blackouts []domain.BlackoutDate) (*Calendar, error) {
	c := &Calendar{blackouts: make(map[string]blackoutRule, len(blackouts))}
	for i := range c.week {
		c.week[i].closed = true
	}

	for _, wh := range week {
		if wh.Weekday < 0 || wh.Weekday > 6 {
			return nil, fmt.Errorf("weekday %d out of range", wh.Weekday)
		}
		if wh.IsClosed {
			c.week[wh.Weekday] = weekdayRule{closed: true}
			continue
		}
		if wh.OpensAt < 0 || wh.ClosesAt > domain.MinutesPerDay || wh.OpensAt >= wh.ClosesAt {
			return nil, fmt.Errorf("weekday %d: invalid hours %d..%d", wh.Weekday, wh.OpensAt, wh.ClosesAt)
		}
		c.week[wh.Weekday] = weekdayRule{opensAt: wh.OpensAt, closesAt: wh.ClosesAt}
	}

	for _, bd := range blackouts {
		if _, err := time.Parse(DateLayout, bd.Date); err != nil {
			return nil, fmt.Errorf("blackout date %q: %w", bd.Date, err)
		}
		c.blackouts[bd.Date] = blackoutRule{
			fullDay:  bd.FullDay,
			opensAt:  bd.OpensAt,
			closesAt: bd.ClosesAt,
		}
	}

	return c, nil
}

// HoursFor returns the effective open range for a date, with any blackout
// override applied. The second return value is false when the shop is
// closed for the whole day. Dates far in the past or future are answered
// by the weekday rule alone; range policing is the caller's concern.
func (c *Calendar) HoursFor(date time.Time) (DayHours, bool) {
	rule := c.week[int(date.Weekday())]
	if rule.closed {
		return DayHours{}, false
	}
	hours := DayHours{OpensAt: rule.opensAt, ClosesAt: rule.closesAt}

	bo, ok := c.blackouts[date.Format(DateLayout)]
	if !ok {
		return hours, true
	}
	if bo.fullDay {
		return DayHours{}, false
	}
	if bo.opensAt != nil && *bo.opensAt > hours.OpensAt {
		hours.OpensAt = *bo.opensAt
	}
	if bo.closesAt != nil && *bo.closesAt < hours.ClosesAt {
		hours.ClosesAt = *bo.closesAt
	}
	// An empty or inverted override range closes the day.
	if hours.OpensAt >= hours.ClosesAt {
		return DayHours{}, false
	}
	return hours, true
}
