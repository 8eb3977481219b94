package schedule

import (
	"fmt"
	"time"
)

// SlotsFor enumerates the candidate start minutes for a date: opensAt,
// opensAt+granularity, ... while the whole slot still fits before closing.
// A trailing period shorter than the granularity is dropped. Closed days
// yield an empty (non-nil) slice.
func (c *Calendar) SlotsFor(date time.Time, granularityMinutes int) []int {
	slots := []int{}
	if granularityMinutes <= 0 {
		return slots
	}
	hours, open := c.HoursFor(date)
	if !open {
		return slots
	}
	for start := hours.OpensAt; start+granularityMinutes <= hours.ClosesAt; start += granularityMinutes {
		slots = append(slots, start)
	}
	return slots
}

// FormatMinute renders a minute-of-day the way the booking UI shows it,
// e.g. 540 -> "9:00 AM", 780 -> "1:00 PM".
func FormatMinute(minute int) string {
	hour := minute / 60
	min := minute % 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, min, period)
}
